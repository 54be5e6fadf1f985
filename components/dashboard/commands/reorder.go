package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ReorderWidgetsInput contains the drag-completion payload: move source to
// target's slot.
type ReorderWidgetsInput struct {
	ContextID string `json:"context_id"`
	SourceID  string `json:"source_id"`
	TargetID  string `json:"target_id"`
}

// MoveWidgetInput is the keyboard reorder payload.
type MoveWidgetInput struct {
	ContextID string `json:"context_id"`
	WidgetID  string `json:"widget_id"`
	Direction string `json:"direction"` // "up" or "down"
}

type reorderService interface {
	ReorderWidgets(ctx context.Context, contextID, sourceID, targetID string) error
	MoveWidgetUp(ctx context.Context, contextID, widgetID string) error
	MoveWidgetDown(ctx context.Context, contextID, widgetID string) error
}

// ReorderWidgetsCommand applies a pointer-driven move to the draft order.
type ReorderWidgetsCommand struct {
	service   reorderService
	telemetry Telemetry
}

// NewReorderWidgetsCommand builds the command.
func NewReorderWidgetsCommand(service reorderService, telemetry Telemetry) *ReorderWidgetsCommand {
	return &ReorderWidgetsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ReorderWidgetsInput] = (*ReorderWidgetsCommand)(nil)

// Execute applies the new ordering.
func (c *ReorderWidgetsCommand) Execute(ctx context.Context, msg ReorderWidgetsInput) error {
	if c.service == nil {
		return errors.New("reorder command requires service")
	}
	if err := c.service.ReorderWidgets(ctx, msg.ContextID, msg.SourceID, msg.TargetID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.widget.reorder", map[string]any{
		"context_id": msg.ContextID,
		"source_id":  msg.SourceID,
		"target_id":  msg.TargetID,
	})
	return nil
}

// MoveWidgetCommand applies a discrete up/down move so reordering is not
// pointer-only.
type MoveWidgetCommand struct {
	service   reorderService
	telemetry Telemetry
}

// NewMoveWidgetCommand builds the command.
func NewMoveWidgetCommand(service reorderService, telemetry Telemetry) *MoveWidgetCommand {
	return &MoveWidgetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[MoveWidgetInput] = (*MoveWidgetCommand)(nil)

// Execute moves the widget one slot.
func (c *MoveWidgetCommand) Execute(ctx context.Context, msg MoveWidgetInput) error {
	if c.service == nil {
		return errors.New("move command requires service")
	}
	var err error
	switch msg.Direction {
	case "up":
		err = c.service.MoveWidgetUp(ctx, msg.ContextID, msg.WidgetID)
	case "down":
		err = c.service.MoveWidgetDown(ctx, msg.ContextID, msg.WidgetID)
	default:
		return errors.New("move command direction must be up or down")
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.widget.move", map[string]any{
		"context_id": msg.ContextID,
		"widget_id":  msg.WidgetID,
		"direction":  msg.Direction,
	})
	return nil
}
