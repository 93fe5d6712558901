package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// FingerprintRepository defines the interface for biometric template storage.
type FingerprintRepository interface {
	// UpsertTemplate stores a template for (device, device user), replacing
	// any existing one.
	UpsertTemplate(ctx context.Context, template *entity.FingerprintTemplate) error

	// FindTemplate retrieves the template for (device, device user), or nil
	// when none is stored.
	FindTemplate(ctx context.Context, deviceID, deviceUserID uuid.UUID) (*entity.FingerprintTemplate, error)

	// FindTemplatesByDevice retrieves all templates stored for a device.
	FindTemplatesByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.FingerprintTemplate, error)
}
