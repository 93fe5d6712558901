package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"timeclock/internal/domain/entity"
	mockRepo "timeclock/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepairBase64Padding(t *testing.T) {
	// "SGk" is "SGk=" with the padding the devices strip in transit.
	repaired, err := repairBase64Padding("SGk")
	require.NoError(t, err)
	assert.Equal(t, "SGk=", repaired)

	// Already-canonical input passes through unchanged.
	repaired, err = repairBase64Padding("SGVsbG8h")
	require.NoError(t, err)
	assert.Equal(t, "SGVsbG8h", repaired)

	_, err = repairBase64Padding("not*base64")
	require.Error(t, err)
}

func TestFingerprintStore_StoreTemplate_KnownUser(t *testing.T) {
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	fingerprintRepo := mockRepo.NewMockFingerprintRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newFingerprintStore(deviceUserRepo, fingerprintRepo, logger)

	ctx := context.Background()
	device := testDevice()
	deviceUser := &entity.DeviceUser{ID: uuid.New(), DeviceID: device.ID, UserID: "101"}

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "101").
		Return([]*entity.DeviceUser{deviceUser}, nil)

	var stored *entity.FingerprintTemplate
	fingerprintRepo.EXPECT().
		UpsertTemplate(ctx, mock.AnythingOfType("*entity.FingerprintTemplate")).
		RunAndReturn(func(_ context.Context, template *entity.FingerprintTemplate) error {
			stored = template

			return nil
		})

	err := store.StoreTemplate(ctx, device, "101", "SGk")

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, device.ID, stored.DeviceID)
	assert.Equal(t, deviceUser.ID, stored.DeviceUserID)
	assert.Equal(t, "SGk=", stored.Template)
}

func TestFingerprintStore_StoreTemplate_UnknownUserGetsRegistered(t *testing.T) {
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	fingerprintRepo := mockRepo.NewMockFingerprintRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newFingerprintStore(deviceUserRepo, fingerprintRepo, logger)

	ctx := context.Background()
	device := testDevice()

	deviceUserRepo.EXPECT().
		FindDeviceUsersByUserID(ctx, device.ID, "900").
		Return(nil, nil)

	var created *entity.DeviceUser
	deviceUserRepo.EXPECT().
		CreateDeviceUser(ctx, mock.AnythingOfType("*entity.DeviceUser")).
		RunAndReturn(func(_ context.Context, du *entity.DeviceUser) error {
			created = du

			return nil
		})
	fingerprintRepo.EXPECT().
		UpsertTemplate(ctx, mock.AnythingOfType("*entity.FingerprintTemplate")).
		Return(nil)

	err := store.StoreTemplate(ctx, device, "900", "SGVsbG8h")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, device.ID, created.DeviceID)
	assert.Equal(t, "900", created.UserID)
	assert.Nil(t, created.EmployeeID)
}

func TestFingerprintStore_StoreTemplate_RejectsBrokenTemplate(t *testing.T) {
	deviceUserRepo := mockRepo.NewMockDeviceUserRepository(t)
	fingerprintRepo := mockRepo.NewMockFingerprintRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newFingerprintStore(deviceUserRepo, fingerprintRepo, logger)

	err := store.StoreTemplate(context.Background(), testDevice(), "101", "не base64")

	require.Error(t, err)
}
