package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ConfigureWidgetInput replaces a draft widget's configuration payload.
type ConfigureWidgetInput struct {
	ContextID     string         `json:"context_id"`
	WidgetID      string         `json:"widget_id"`
	Configuration map[string]any `json:"configuration"`
}

type configureService interface {
	UpdateWidgetConfig(ctx context.Context, contextID, widgetID string, config map[string]any) error
}

// ConfigureWidgetCommand validates and stores widget configuration.
type ConfigureWidgetCommand struct {
	service   configureService
	telemetry Telemetry
}

// NewConfigureWidgetCommand builds the command.
func NewConfigureWidgetCommand(service configureService, telemetry Telemetry) *ConfigureWidgetCommand {
	return &ConfigureWidgetCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ConfigureWidgetInput] = (*ConfigureWidgetCommand)(nil)

// Execute updates the widget configuration.
func (c *ConfigureWidgetCommand) Execute(ctx context.Context, msg ConfigureWidgetInput) error {
	if c.service == nil {
		return errors.New("configure command requires service")
	}
	if msg.WidgetID == "" {
		return errors.New("configure command requires widget id")
	}
	if err := c.service.UpdateWidgetConfig(ctx, msg.ContextID, msg.WidgetID, msg.Configuration); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.widget.configure", map[string]any{
		"context_id": msg.ContextID,
		"widget_id":  msg.WidgetID,
	})
	return nil
}
