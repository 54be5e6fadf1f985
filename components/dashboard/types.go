package dashboard

import "context"

// WidgetStore encapsulates the hosted persistence layer that owns widget rows.
// Implementations ensure thread safety and idempotency; the engine only ever
// replaces persisted layouts wholesale through the reconcile pipeline.
type WidgetStore interface {
	ListWidgets(ctx context.Context, contextID string) ([]WidgetInstance, error)
	CreateWidget(ctx context.Context, contextID string, input CreateWidgetInput) (WidgetInstance, error)
	UpdateWidget(ctx context.Context, widgetID string, patch WidgetPatch) error
	DeleteWidget(ctx context.Context, widgetID string) error
}

// ConfigValidator validates widget configuration payloads against their schema.
type ConfigValidator interface {
	Validate(entry CatalogEntry, config map[string]any) error
}

// RefreshHook notifies transports (REST/WebSocket) about layout changes.
type RefreshHook interface {
	LayoutChanged(ctx context.Context, event LayoutEvent) error
}

// WidgetInstance is a single placed widget on a dashboard. Position is the
// widget's rank in the dashboard's linear order; the store has no native
// concept of array order, so rank is always persisted explicitly.
type WidgetInstance struct {
	ID            string         `json:"id"`
	WidgetType    string         `json:"widget_type"`
	Title         string         `json:"title"`
	Size          SizePreset     `json:"size"`
	Configuration map[string]any `json:"configuration,omitempty"`
	Position      int            `json:"position"`
}

// Layout is the ordered widget collection for one owning context.
type Layout struct {
	ContextID string           `json:"context_id"`
	Widgets   []WidgetInstance `json:"widgets"`
}

// CreateWidgetInput configures new persisted widget rows.
type CreateWidgetInput struct {
	WidgetType    string         `json:"widget_type"`
	Title         string         `json:"title"`
	Size          SizePreset     `json:"size"`
	Configuration map[string]any `json:"configuration,omitempty"`
	Position      int            `json:"position"`
}

// WidgetPatch carries the mutable fields of a persisted widget. Nil pointers
// leave the stored value untouched.
type WidgetPatch struct {
	Title         *string        `json:"title,omitempty"`
	Size          *SizePreset    `json:"size,omitempty"`
	Position      *int           `json:"position,omitempty"`
	Configuration map[string]any `json:"configuration,omitempty"`
}

// CatalogEntry describes a known widget type and its display defaults.
type CatalogEntry struct {
	WidgetType  string         `json:"widget_type" yaml:"widget_type"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Category    string         `json:"category,omitempty" yaml:"category,omitempty"`
	DefaultSize SizePreset     `json:"default_size,omitempty" yaml:"default_size,omitempty"`
	Schema      map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// LayoutEvent describes session/layout changes that transports might care about.
type LayoutEvent struct {
	ContextID string         `json:"context_id"`
	Reason    string         `json:"reason"`
	WidgetID  string         `json:"widget_id,omitempty"`
	Widget    WidgetInstance `json:"widget,omitempty"`
}

// Reasons carried on LayoutEvent.
const (
	EventEditBegan     = "edit_began"
	EventEditCancelled = "edit_cancelled"
	EventLayoutSaved   = "layout_saved"
	EventWidgetAdded   = "widget_added"
	EventWidgetRemoved = "widget_removed"
	EventWidgetResized = "widget_resized"
	EventReordered     = "reordered"
)
