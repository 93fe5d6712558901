// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"timeclock/config"
	"timeclock/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler     *handler.DeviceHandler
	EmployeeHandler   *handler.EmployeeHandler
	AttendanceHandler *handler.AttendanceHandler
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler     *handler.DeviceHandler
	employeeHandler   *handler.EmployeeHandler
	attendanceHandler *handler.AttendanceHandler
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:     params.DeviceHandler,
		employeeHandler:   params.EmployeeHandler,
		attendanceHandler: params.AttendanceHandler,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.CreateDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.POST("/pull", r.deviceHandler.PullAllDevices)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.PUT("/:id", r.deviceHandler.UpdateDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)

		// Synchronization actions against one device
		devicesGroup.POST("/:id/check-connection", r.deviceHandler.CheckConnection)
		devicesGroup.POST("/:id/sync-employees", r.deviceHandler.SynchronizeEmployees)
		devicesGroup.POST("/:id/pull", r.deviceHandler.PullAttendance)

		// Punch-code mappings
		devicesGroup.GET("/:id/punch-codes", r.deviceHandler.GetPunchCodeMappings)

		// Command queue for ADMS devices
		devicesGroup.GET("/:id/commands", r.deviceHandler.ListCommands)
		devicesGroup.POST("/:id/commands/export-employee", r.deviceHandler.QueueExportEmployee)
		devicesGroup.POST("/:id/commands/delete-user", r.deviceHandler.QueueDeleteUser)
		devicesGroup.POST("/:id/commands/rename-user", r.deviceHandler.QueueRenameUser)
		devicesGroup.POST("/:id/commands/user-info", r.deviceHandler.QueueUserInfoRequest)
	}

	// Employee management routes
	employeesGroup := apiV1.Group("/employees")
	{
		employeesGroup.POST("", r.employeeHandler.CreateEmployee)
		employeesGroup.GET("", r.employeeHandler.ListEmployees)
		employeesGroup.GET("/:id", r.employeeHandler.GetEmployee)
		employeesGroup.POST("/:id/register-devices", r.employeeHandler.RegisterOnDevices)
		employeesGroup.GET("/:id/attendances", r.attendanceHandler.ListAttendances)
		employeesGroup.GET("/:id/punch-logs", r.attendanceHandler.ListPunchLogs)
	}

	// Attendance record routes
	apiV1.DELETE("/attendances/:id", r.attendanceHandler.DeleteAttendance)
	apiV1.DELETE("/punch-logs/:id", r.attendanceHandler.DeletePunchLog)
}
