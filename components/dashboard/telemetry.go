package dashboard

import "context"

// Telemetry receives structured layout-engine events (session transitions,
// reconcile phases, provider failures). Implementations must be fast and must
// not fail; the engine never checks an error from Record.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

// TelemetryFunc adapts a function to the Telemetry interface.
type TelemetryFunc func(ctx context.Context, event string, payload map[string]any)

// Record implements Telemetry.
func (f TelemetryFunc) Record(ctx context.Context, event string, payload map[string]any) {
	f(ctx, event, payload)
}

// normalizeTelemetry lets collaborators hold a non-nil Telemetry.
func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return TelemetryFunc(func(context.Context, string, map[string]any) {})
	}
	return t
}
