package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// PunchCodeRepository defines the interface for per-device punch-code
// mappings.
type PunchCodeRepository interface {
	// CreateMapping persists a new punch-code mapping.
	CreateMapping(ctx context.Context, mapping *entity.PunchCodeMapping) error

	// FindMappingByCode retrieves the mapping for a raw status code on a
	// device, or nil when the code is unmapped.
	FindMappingByCode(ctx context.Context, deviceID uuid.UUID, code int) (*entity.PunchCodeMapping, error)

	// FindMappingsByDevice retrieves all mappings configured for a device.
	FindMappingsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.PunchCodeMapping, error)

	// DeleteMapping removes a mapping by its ID.
	DeleteMapping(ctx context.Context, id uuid.UUID) error
}
