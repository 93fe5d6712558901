package usecase

import (
	"context"

	"timeclock/internal/domain/entity"
)

// ADMSUsecase defines the interface for the push (ADMS) ingestion channel,
// where devices initiate contact and upload line-oriented payloads.
type ADMSUsecase interface {
	// Handshake resolves the pushing device by serial number and marks it
	// connected.
	Handshake(ctx context.Context, serialNumber string) (*entity.Device, error)

	// IngestAttendance parses ATTLOG lines ("userID date time number code",
	// one per line) and feeds them through the reconciliation engine.
	IngestAttendance(ctx context.Context, device *entity.Device, body string) (*ProcessResult, error)

	// IngestOperations parses OPERLOG payloads: OPLOG event lines become
	// operation logs, USER lines upsert device users, FP lines store
	// fingerprint templates.
	IngestOperations(ctx context.Context, device *entity.Device, body string) error

	// CommandResponse concatenates the device's pending command payloads and
	// marks them executed (the getrequest poll).
	CommandResponse(ctx context.Context, device *entity.Device) (string, error)
}
