package commands

import (
	"context"

	dashboard "github.com/humbl-club/dashlayout/components/dashboard"
)

// Telemetry aliases the core recording contract so the command layer and the
// service share one recorder without redeclaring the interface.
type Telemetry = dashboard.Telemetry

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return dashboard.TelemetryFunc(func(context.Context, string, map[string]any) {})
	}
	return t
}
