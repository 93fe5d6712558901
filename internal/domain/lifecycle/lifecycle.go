// Package lifecycle holds shared lifecycle constants for fx-managed
// components.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks.
const DefaultTimeout = 10 * time.Second
