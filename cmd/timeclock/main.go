package main

import (
	"context"
	"log/slog"
	"os"

	"timeclock/config"
	"timeclock/internal/delivery"
	"timeclock/internal/delivery/adms"
	admshandler "timeclock/internal/delivery/adms/handler"
	"timeclock/internal/delivery/http"
	"timeclock/internal/delivery/http/middleware"
	"timeclock/internal/delivery/http/router/handler"
	"timeclock/internal/delivery/poller"
	"timeclock/internal/infra/device/zkteco"
	logs "timeclock/internal/infra/log"
	"timeclock/internal/infra/persistence/postgres"
	"timeclock/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		zkteco.NewClientFactory,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewDeviceUserRepository,
			postgres.NewEmployeeRepository,
			postgres.NewPunchLogRepository,
			postgres.NewAttendanceRepository,
			postgres.NewCommandRepository,
			postgres.NewPunchCodeRepository,
			postgres.NewFingerprintRepository,
			postgres.NewOperationLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewEmployeeService,
			impl.NewAttendanceService,
			impl.NewCommandService,
			impl.NewSyncService,
			impl.NewADMSService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewEmployeeHandler,
			handler.NewAttendanceHandler,
			admshandler.NewIClockHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				adms.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				poller.NewPoller,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
