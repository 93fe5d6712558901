// Package zkteco adapts the go-zkteco SDK to the domain's DeviceClient
// interface.
package zkteco

import (
	"context"
	"strconv"
	"strings"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/service"

	zk "github.com/0mithun/go-zkteco"
	"github.com/pkg/errors"
)

// clientFactory builds SDK-backed clients for configured devices.
type clientFactory struct {
	protocol string
}

// NewClientFactory is the constructor for clientFactory.
func NewClientFactory(cfg *config.Config) service.DeviceClientFactory {
	protocol := "tcp"
	if cfg != nil && cfg.Device != nil && cfg.Device.Protocol != "" {
		protocol = cfg.Device.Protocol
	}

	return &clientFactory{protocol: protocol}
}

// NewClient returns an unconnected client for the device.
func (f *clientFactory) NewClient(device *entity.Device, timeout time.Duration) service.DeviceClient {
	opts := []zk.Option{zk.WithProtocol(f.protocol)}

	if timeout > 0 {
		seconds := int(timeout / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		opts = append(opts, zk.WithTimeout(seconds))
	}

	// The device password is numeric on the wire; a non-numeric value cannot
	// authenticate anyway, so it falls back to the unset default.
	if device.Password != "" {
		if password, err := strconv.Atoi(device.Password); err == nil {
			opts = append(opts, zk.WithPassword(password))
		}
	}

	return &client{sdk: zk.NewZKTeco(device.IPAddress, device.Port, opts...)}
}

// client wraps one SDK connection. Not safe for concurrent use; callers hold
// one client per device connection.
type client struct {
	sdk *zk.ZKTeco
}

// Connect establishes the device connection.
func (c *client) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.ErrConnectionFailed.WrapMessage(err.Error())
	}

	if err := c.sdk.Connect(); err != nil {
		if strings.Contains(err.Error(), "authentication failed") {
			return domainerrors.ErrAuthenticationFailed.WrapMessage(err.Error())
		}

		return domainerrors.ErrConnectionFailed.WrapMessage(err.Error())
	}

	return nil
}

// GetUsers reads the device's user table.
func (c *client) GetUsers(ctx context.Context) ([]entity.DeviceUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "get users cancelled")
	}

	sdkUsers, err := c.sdk.GetUsers()
	if err != nil {
		return nil, domainerrors.ErrConnectionFailed.WrapMessage(err.Error())
	}

	users := make([]entity.DeviceUser, 0, len(sdkUsers))
	for _, u := range sdkUsers {
		users = append(users, entity.DeviceUser{
			UID:    u.UID,
			UserID: u.UserID,
			Name:   u.Name,
		})
	}

	return users, nil
}

// GetAttendance reads the device's raw punch records. Timestamps stay in the
// device's local wall-clock; normalization happens downstream.
func (c *client) GetAttendance(ctx context.Context) ([]entity.RawPunch, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "get attendance cancelled")
	}

	records, err := c.sdk.GetAttendances()
	if err != nil {
		return nil, domainerrors.ErrConnectionFailed.WrapMessage(err.Error())
	}

	punches := make([]entity.RawPunch, 0, len(records))
	for i, rec := range records {
		punches = append(punches, entity.RawPunch{
			UserID:    rec.UserID,
			Timestamp: rec.RecordTime,
			Code:      rec.Type,
			Number:    strconv.Itoa(rec.UID),
			Sequence:  i,
		})
	}

	return punches, nil
}

// SetUser registers or updates a user slot on the device.
func (c *client) SetUser(ctx context.Context, uid int, name string, privilege int, password, card, userID string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "set user cancelled")
	}

	cardNo := 0
	if card != "" {
		parsed, err := strconv.Atoi(card)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("card number must be numeric")
		}
		cardNo = parsed
	}

	if err := c.sdk.SetUser(uid, userID, name, password, privilege, cardNo); err != nil {
		return domainerrors.ErrConnectionFailed.WrapMessage(err.Error())
	}

	return nil
}

// Disconnect releases the device connection.
func (c *client) Disconnect(_ context.Context) error {
	if err := c.sdk.Disconnect(); err != nil {
		return errors.Wrap(err, "failed to disconnect from device")
	}

	return nil
}
