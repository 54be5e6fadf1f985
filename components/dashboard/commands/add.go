package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/humbl-club/dashlayout/components/dashboard"
)

// AddWidgetInput captures the add-widget payload. The widget type must come
// from the catalog; adding an already-placed type is a silent no-op at the
// session, mirroring the picker's filtering.
type AddWidgetInput struct {
	ContextID  string `json:"context_id"`
	WidgetType string `json:"widget_type"`
}

type addService interface {
	AddWidget(ctx context.Context, contextID, widgetType string) (dashboard.WidgetInstance, error)
}

// AddWidgetCommand appends a widget of a catalog type to the draft.
type AddWidgetCommand struct {
	service   addService
	telemetry Telemetry
}

// NewAddWidgetCommand builds the command.
func NewAddWidgetCommand(service addService, telemetry Telemetry) *AddWidgetCommand {
	return &AddWidgetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AddWidgetInput] = (*AddWidgetCommand)(nil)

// Execute adds the widget to the draft.
func (c *AddWidgetCommand) Execute(ctx context.Context, msg AddWidgetInput) error {
	if c.service == nil {
		return errors.New("add command requires service")
	}
	if _, err := c.service.AddWidget(ctx, msg.ContextID, msg.WidgetType); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.widget.add", map[string]any{
		"context_id":  msg.ContextID,
		"widget_type": msg.WidgetType,
	})
	return nil
}
