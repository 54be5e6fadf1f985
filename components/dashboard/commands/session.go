package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// EditSessionInput identifies the dashboard whose session is targeted.
type EditSessionInput struct {
	ContextID string `json:"context_id"`
}

type sessionService interface {
	BeginEdit(ctx context.Context, contextID string) error
	CancelEdit(ctx context.Context, contextID string) error
	Save(ctx context.Context, contextID string) error
}

// BeginEditCommand enters edit mode, snapshotting the persisted layout into a
// draft.
type BeginEditCommand struct {
	service   sessionService
	telemetry Telemetry
}

// NewBeginEditCommand builds the command.
func NewBeginEditCommand(service sessionService, telemetry Telemetry) *BeginEditCommand {
	return &BeginEditCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[EditSessionInput] = (*BeginEditCommand)(nil)

// Execute enters edit mode.
func (c *BeginEditCommand) Execute(ctx context.Context, msg EditSessionInput) error {
	if c.service == nil {
		return errors.New("begin edit command requires service")
	}
	if err := c.service.BeginEdit(ctx, msg.ContextID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.edit.begin", map[string]any{"context_id": msg.ContextID})
	return nil
}

// CancelEditCommand discards the draft without touching the store.
type CancelEditCommand struct {
	service   sessionService
	telemetry Telemetry
}

// NewCancelEditCommand builds the command.
func NewCancelEditCommand(service sessionService, telemetry Telemetry) *CancelEditCommand {
	return &CancelEditCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[EditSessionInput] = (*CancelEditCommand)(nil)

// Execute cancels the session.
func (c *CancelEditCommand) Execute(ctx context.Context, msg EditSessionInput) error {
	if c.service == nil {
		return errors.New("cancel edit command requires service")
	}
	if err := c.service.CancelEdit(ctx, msg.ContextID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.edit.cancel", map[string]any{"context_id": msg.ContextID})
	return nil
}

// SaveLayoutCommand reconciles the draft against the store and re-seeds the
// session on success. A failed save keeps the session editable.
type SaveLayoutCommand struct {
	service   sessionService
	telemetry Telemetry
}

// NewSaveLayoutCommand builds the command.
func NewSaveLayoutCommand(service sessionService, telemetry Telemetry) *SaveLayoutCommand {
	return &SaveLayoutCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[EditSessionInput] = (*SaveLayoutCommand)(nil)

// Execute saves the draft.
func (c *SaveLayoutCommand) Execute(ctx context.Context, msg EditSessionInput) error {
	if c.service == nil {
		return errors.New("save command requires service")
	}
	if err := c.service.Save(ctx, msg.ContextID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.layout.save", map[string]any{"context_id": msg.ContextID})
	return nil
}
