package dashboard

import "context"

// Provider fetches the renderable content for a widget instance. The engine
// never inspects the payload; it is handed to templates as-is.
type Provider interface {
	Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, meta WidgetContext) (WidgetData, error)

// Fetch calls the wrapped function.
func (f ProviderFunc) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	return f(ctx, meta)
}

// WidgetContext carries the metadata providers receive: the instance's
// configuration and size preset, plus the owning context.
type WidgetContext struct {
	ContextID string
	Instance  WidgetInstance
}

// WidgetData is an opaque payload passed to templates.
type WidgetData map[string]any
