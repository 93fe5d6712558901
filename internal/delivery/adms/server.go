// Package adms hosts the push listener ZKTeco ADMS devices dial into.
package adms

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"timeclock/config"
	"timeclock/internal/delivery"
	"timeclock/internal/delivery/adms/handler"
	"timeclock/internal/delivery/middleware"
	"timeclock/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type admsServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the ADMS push server
type ServerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	IClockHandler *handler.IClockHandler
}

// NewServer creates the HTTP listener for the device push channel
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Request logging
	e.Use(slogecho.New(params.Logger))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Device push endpoints
	e.GET("/iclock/cdata", params.IClockHandler.Handshake)
	e.POST("/iclock/cdata", params.IClockHandler.UploadData)
	e.GET("/iclock/getrequest", params.IClockHandler.FetchCommands)
	e.POST("/iclock/devicecmd", params.IClockHandler.AcknowledgeCommands)

	srv := &admsServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the ADMS push server
func (s *admsServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.ADMS.Port))
	s.logger.Info("Starting ADMS push server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the ADMS push server
func (s *admsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down ADMS push server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
