package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// SeedDashboardInput controls bootstrap behavior for one context.
type SeedDashboardInput struct {
	ContextID string `json:"context_id"`
}

type seedService interface {
	SeedLayout(ctx context.Context, contextID string) error
}

// SeedDashboardCommand writes the starter widgets for empty dashboards.
type SeedDashboardCommand struct {
	service   seedService
	telemetry Telemetry
}

// NewSeedDashboardCommand wires dependencies.
func NewSeedDashboardCommand(service seedService, telemetry Telemetry) *SeedDashboardCommand {
	return &SeedDashboardCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SeedDashboardInput] = (*SeedDashboardCommand)(nil)

// Execute runs the bootstrap pipeline.
func (c *SeedDashboardCommand) Execute(ctx context.Context, msg SeedDashboardInput) error {
	if c.service == nil {
		return errors.New("seed command requires service")
	}
	if err := c.service.SeedLayout(ctx, msg.ContextID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "dashboard.seed", map[string]any{"context_id": msg.ContextID})
	return nil
}
