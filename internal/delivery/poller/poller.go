// Package poller runs the scheduled attendance pull against polled devices.
package poller

import (
	"context"
	"log/slog"

	"timeclock/config"
	"timeclock/internal/delivery"
	"timeclock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type pullPoller struct {
	cfg    *config.Config
	logger *slog.Logger
	syncUC usecase.SyncUsecase
	cron   *cron.Cron
	done   chan struct{}
}

// PollerParams holds dependencies for the pull poller
type PollerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewPoller creates the scheduled pull worker
func NewPoller(params PollerParams) (delivery.Delivery, error) {
	p := &pullPoller{
		cfg:    params.Cfg,
		logger: params.Logger,
		syncUC: params.SyncUC,
		cron:   cron.New(),
		done:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p, nil
}

// Serve schedules the pull cycle and blocks until shutdown
func (p *pullPoller) Serve(ctx context.Context) error {
	if p.cfg.Poller == nil || !p.cfg.Poller.Enabled {
		p.logger.Info("Attendance poller disabled")
		<-p.done

		return nil
	}

	if _, err := p.cron.AddFunc(p.cfg.Poller.Schedule, p.pull); err != nil {
		return errors.Wrap(err, "invalid poller schedule")
	}

	p.logger.Info("Starting attendance poller", slog.String("schedule", p.cfg.Poller.Schedule))
	p.cron.Start()
	<-p.done

	return nil
}

// pull runs one pull cycle across every pollable device. Per-device failures
// are reported, not propagated, so one broken device cannot stall the rest.
func (p *pullPoller) pull() {
	ctx := context.Background()

	reports, err := p.syncUC.PullAllDevices(ctx)
	if err != nil {
		p.logger.Error("pull cycle failed", slog.Any("error", err))

		return
	}

	for _, report := range reports {
		switch {
		case report.Skipped:
			continue
		case report.Err != nil:
			p.logger.Warn("device pull failed",
				slog.String("device", report.Device),
				slog.String("reason", report.Reason))
		default:
			p.logger.Info("device pull finished",
				slog.String("device", report.Device),
				slog.Int("logs", len(report.Result.Logs)),
				slog.Int("failures", len(report.Result.Failures)))
		}
	}
}

// stop halts the schedule and waits for a running cycle to finish
func (p *pullPoller) stop(ctx context.Context) error {
	p.logger.Info("Shutting down attendance poller")

	stopCtx := p.cron.Stop()
	close(p.done)

	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
