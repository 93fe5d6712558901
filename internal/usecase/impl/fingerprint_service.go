package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fingerprintStore ingests biometric templates pushed over the OPERLOG
// channel. Devices truncate base64 padding in transit, so templates are
// repaired and re-encoded canonically before storage.
type fingerprintStore struct {
	deviceUserRepo  repository.DeviceUserRepository
	fingerprintRepo repository.FingerprintRepository
	logger          *slog.Logger
}

func newFingerprintStore(
	deviceUserRepo repository.DeviceUserRepository,
	fingerprintRepo repository.FingerprintRepository,
	logger *slog.Logger,
) *fingerprintStore {
	return &fingerprintStore{
		deviceUserRepo:  deviceUserRepo,
		fingerprintRepo: fingerprintRepo,
		logger:          logger,
	}
}

// StoreTemplate repairs and stores one template for the device user carrying
// the given textual id. An unknown id creates a bare registration; devices
// push fingerprints for identities the HR side has not claimed yet.
func (s *fingerprintStore) StoreTemplate(ctx context.Context, device *entity.Device, userID, raw string) error {
	template, err := repairBase64Padding(raw)
	if err != nil {
		return errors.Wrap(err, "failed to decode template")
	}

	deviceUser, err := s.resolveDeviceUser(ctx, device, userID)
	if err != nil {
		return err
	}

	err = s.fingerprintRepo.UpsertTemplate(ctx, &entity.FingerprintTemplate{
		ID:           uuid.New(),
		DeviceID:     device.ID,
		DeviceUserID: deviceUser.ID,
		Template:     template,
	})
	if err != nil {
		return errors.Wrap(err, "failed to store template")
	}

	return nil
}

func (s *fingerprintStore) resolveDeviceUser(ctx context.Context, device *entity.Device, userID string) (*entity.DeviceUser, error) {
	found, err := s.deviceUserRepo.FindDeviceUsersByUserID(ctx, device.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up device user")
	}
	if len(found) > 0 {
		return found[0], nil
	}

	deviceUser := &entity.DeviceUser{
		ID:       uuid.New(),
		DeviceID: device.ID,
		UserID:   userID,
	}
	if err := s.deviceUserRepo.CreateDeviceUser(ctx, deviceUser); err != nil {
		return nil, errors.Wrap(err, "failed to register device user")
	}
	s.logger.Info("Registered unclaimed device user from fingerprint push",
		"device", device.Name, "userID", userID)

	return deviceUser, nil
}

// repairBase64Padding restores the trailing "=" characters devices strip from
// template payloads, then re-encodes the decoded bytes so stored templates
// are always canonical base64.
func repairBase64Padding(encoded string) (string, error) {
	if rem := len(encoded) % 4; rem != 0 {
		encoded += strings.Repeat("=", 4-rem)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrap(err, "invalid base64 payload")
	}

	return base64.StdEncoding.EncodeToString(decoded), nil
}
