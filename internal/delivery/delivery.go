// Package delivery defines the shared contract for the application's serving
// surfaces (management API, ADMS listener, poller).
package delivery

import "context"

// Delivery is a long-running serving component started by the application
// entrypoint. Implementations register their shutdown through fx lifecycle
// hooks; Serve blocks until the component stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
