package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ResizeWidgetInput identifies the draft widget whose size preset advances
// one step through the cycle.
type ResizeWidgetInput struct {
	ContextID string `json:"context_id"`
	WidgetID  string `json:"widget_id"`
}

type resizeService interface {
	ResizeWidget(ctx context.Context, contextID, widgetID string) error
}

// ResizeWidgetCommand cycles a widget's size preset.
type ResizeWidgetCommand struct {
	service   resizeService
	telemetry Telemetry
}

// NewResizeWidgetCommand builds the command.
func NewResizeWidgetCommand(service resizeService, telemetry Telemetry) *ResizeWidgetCommand {
	return &ResizeWidgetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ResizeWidgetInput] = (*ResizeWidgetCommand)(nil)

// Execute resizes the widget.
func (c *ResizeWidgetCommand) Execute(ctx context.Context, msg ResizeWidgetInput) error {
	if c.service == nil {
		return errors.New("resize command requires service")
	}
	if err := c.service.ResizeWidget(ctx, msg.ContextID, msg.WidgetID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.widget.resize", map[string]any{
		"context_id": msg.ContextID,
		"widget_id":  msg.WidgetID,
	})
	return nil
}
