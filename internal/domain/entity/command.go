package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommandName identifies the kind of instruction queued for a device.
type CommandName string

const (
	// CommandData pushes a user registration to the device.
	CommandData CommandName = "DATA"
	// CommandDelete removes a user registration from the device.
	CommandDelete CommandName = "DEL"
	// CommandUpdate renames an existing user registration.
	CommandUpdate CommandName = "UPDATE"
	// CommandUserInfo requests the device's user table.
	CommandUserInfo CommandName = "USERINFO"
	// CommandCheck is a connectivity probe.
	CommandCheck CommandName = "CHECK"
)

// CommandStatus is the lifecycle state of a queued device command.
type CommandStatus string

const (
	// CommandStatusPending means the command awaits delivery to the device.
	CommandStatusPending CommandStatus = "pending"
	// CommandStatusExecuted means the device fetched the command and an
	// acknowledgment is awaited.
	CommandStatusExecuted CommandStatus = "executed"
	// CommandStatusSuccess means the device acknowledged the command and its
	// side effects were applied.
	CommandStatusSuccess CommandStatus = "success"
	// CommandStatusFailed means the acknowledgment side effect failed and the
	// command needs operator attention.
	CommandStatusFailed CommandStatus = "failed"
)

// DeviceCommand is a queued instruction for an ADMS device.
//
// Commands move pending -> executed -> success|failed. The ExecutionLog holds
// the raw payload the device fetches ("C:<id>:<body>") and is also what the
// acknowledgment side effects are parsed from.
type DeviceCommand struct {
	ID           uuid.UUID     `json:"id"`
	DeviceID     uuid.UUID     `json:"device_id"`
	Name         CommandName   `json:"name"`
	Status       CommandStatus `json:"status"`
	ExecutionLog string        `json:"execution_log"`
	EmployeeID   *uuid.UUID    `json:"employee_id"` // Employee the command acts for, if any.
	PIN          string        `json:"pin"`         // Device user id targeted by UPDATE commands.
	FailureNote  string        `json:"failure_note"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
