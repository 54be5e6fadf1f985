package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/humbl-club/dashlayout/pkg/activity"
)

var (
	errMissingWidgetStore = errors.New("dashboard: widget store not configured")
	errInvalidContext     = errors.New("dashboard: context id is required")
	errInvalidWidgetType  = errors.New("dashboard: widget type is required")
)

// Options configures the dashboard Service. Every collaborator is provided
// via interface so applications can swap implementations without importing
// internal packages.
type Options struct {
	WidgetStore     WidgetStore
	Catalog         *Catalog
	ConfigValidator ConfigValidator
	RefreshHook     RefreshHook
	Telemetry       Telemetry
	ActivityHooks   activity.Hooks
	ActivityConfig  activity.Config
}

// Service orchestrates edit sessions and reconciliation on top of the hosted
// widget store. One session exists per owning context; the engine assumes a
// single active editor per dashboard, last save wins at the store.
type Service struct {
	opts       Options
	reconciler *Reconciler
	activity   *activity.Emitter

	mu       sync.Mutex
	sessions map[string]*EditSession
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Catalog == nil {
		opts.Catalog = NewCatalog()
	}
	if opts.ConfigValidator == nil {
		opts.ConfigValidator = NewJSONSchemaValidator()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{
		opts:       opts,
		reconciler: NewReconciler(opts.WidgetStore, opts.Telemetry),
		activity:   activity.NewEmitter(opts.ActivityHooks, opts.ActivityConfig),
		sessions:   map[string]*EditSession{},
	}
}

// Catalog exposes the widget type registry.
func (s *Service) Catalog() *Catalog {
	return s.opts.Catalog
}

// Session returns the edit session for a context, creating one seeded from
// the persisted layout on first use.
func (s *Service) Session(ctx context.Context, contextID string) (*EditSession, error) {
	if contextID == "" {
		return nil, errInvalidContext
	}
	s.mu.Lock()
	session, ok := s.sessions[contextID]
	s.mu.Unlock()
	if ok {
		return session, nil
	}
	store, err := s.widgetStore()
	if err != nil {
		return nil, err
	}
	persisted, err := store.ListWidgets(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: load layout %s: %w", contextID, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[contextID]; ok {
		return session, nil
	}
	session = NewEditSession(contextID, s.opts.Catalog, persisted)
	s.sessions[contextID] = session
	return session, nil
}

// BeginEdit enters edit mode for the context, snapshotting the persisted
// layout into a fresh draft.
func (s *Service) BeginEdit(ctx context.Context, contextID string) error {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	if err := session.BeginEdit(); err != nil {
		return err
	}
	s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventEditBegan})
	s.recordTelemetry(ctx, "dashboard.edit.begin", map[string]any{"context_id": contextID})
	return nil
}

// CancelEdit discards the draft without touching the store.
func (s *Service) CancelEdit(ctx context.Context, contextID string) error {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	if err := session.Cancel(); err != nil {
		return err
	}
	s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventEditCancelled})
	s.recordTelemetry(ctx, "dashboard.edit.cancel", map[string]any{"context_id": contextID})
	return nil
}

// AddWidget appends a widget of the given type to the draft.
func (s *Service) AddWidget(ctx context.Context, contextID, widgetType string) (WidgetInstance, error) {
	if widgetType == "" {
		return WidgetInstance{}, errInvalidWidgetType
	}
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return WidgetInstance{}, err
	}
	widget, added, err := session.AddWidget(widgetType)
	if err != nil {
		return WidgetInstance{}, err
	}
	if added {
		s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventWidgetAdded, WidgetID: widget.ID, Widget: widget})
		s.recordTelemetry(ctx, "dashboard.widget.add", map[string]any{
			"context_id":  contextID,
			"widget_type": widgetType,
		})
		s.emitActivity(ctx, "dashboard.widget.add", "widget_instance", widget.ID, map[string]any{
			"context_id":  contextID,
			"widget_type": widgetType,
		})
	}
	return widget, nil
}

// RemoveWidget deletes a widget from the draft.
func (s *Service) RemoveWidget(ctx context.Context, contextID, widgetID string) error {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	removed, err := session.RemoveWidget(widgetID)
	if err != nil {
		return err
	}
	if removed {
		s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventWidgetRemoved, WidgetID: widgetID})
		s.recordTelemetry(ctx, "dashboard.widget.remove", map[string]any{
			"context_id": contextID,
			"widget_id":  widgetID,
		})
		s.emitActivity(ctx, "dashboard.widget.remove", "widget_instance", widgetID, map[string]any{
			"context_id": contextID,
		})
	}
	return nil
}

// ResizeWidget cycles a draft widget's size preset.
func (s *Service) ResizeWidget(ctx context.Context, contextID, widgetID string) error {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	size, resized, err := session.ResizeWidget(widgetID)
	if err != nil {
		return err
	}
	if resized {
		s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventWidgetResized, WidgetID: widgetID})
		s.recordTelemetry(ctx, "dashboard.widget.resize", map[string]any{
			"context_id": contextID,
			"widget_id":  widgetID,
			"size":       string(size),
		})
	}
	return nil
}

// ReorderWidgets moves sourceID to targetID's slot in the draft.
func (s *Service) ReorderWidgets(ctx context.Context, contextID, sourceID, targetID string) error {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	moved, err := session.Reorder(sourceID, targetID)
	if err != nil {
		return err
	}
	if moved {
		s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventReordered, WidgetID: sourceID})
		s.recordTelemetry(ctx, "dashboard.widget.reorder", map[string]any{
			"context_id": contextID,
			"source_id":  sourceID,
			"target_id":  targetID,
		})
	}
	return nil
}

// MoveWidgetUp and MoveWidgetDown expose the keyboard reorder path.
func (s *Service) MoveWidgetUp(ctx context.Context, contextID, widgetID string) error {
	return s.moveWidget(ctx, contextID, widgetID, true)
}

// MoveWidgetDown moves the widget one slot toward the back of the draft.
func (s *Service) MoveWidgetDown(ctx context.Context, contextID, widgetID string) error {
	return s.moveWidget(ctx, contextID, widgetID, false)
}

func (s *Service) moveWidget(ctx context.Context, contextID, widgetID string, up bool) error {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	var moved bool
	if up {
		moved, err = session.MoveWidgetUp(widgetID)
	} else {
		moved, err = session.MoveWidgetDown(widgetID)
	}
	if err != nil {
		return err
	}
	if moved {
		s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventReordered, WidgetID: widgetID})
		s.recordTelemetry(ctx, "dashboard.widget.move", map[string]any{
			"context_id": contextID,
			"widget_id":  widgetID,
			"up":         up,
		})
	}
	return nil
}

// UpdateWidgetConfig replaces a draft widget's configuration after validating
// it against the catalog schema for its type.
func (s *Service) UpdateWidgetConfig(ctx context.Context, contextID, widgetID string, config map[string]any) error {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	if entry, widgetType, ok := s.entryForWidget(session, widgetID); ok && widgetType != "" {
		if err := s.opts.ConfigValidator.Validate(entry, config); err != nil {
			return err
		}
	}
	updated, err := session.UpdateWidgetConfig(widgetID, config)
	if err != nil {
		return err
	}
	if updated {
		s.recordTelemetry(ctx, "dashboard.widget.configure", map[string]any{
			"context_id": contextID,
			"widget_id":  widgetID,
		})
	}
	return nil
}

func (s *Service) entryForWidget(session *EditSession, widgetID string) (CatalogEntry, string, bool) {
	for _, w := range session.Draft() {
		if w.ID == widgetID {
			entry, ok := s.opts.Catalog.Lookup(w.WidgetType)
			return entry, w.WidgetType, ok
		}
	}
	return CatalogEntry{}, "", false
}

// Save reconciles the draft against the store's current layout, refreshes
// from the store, and re-seeds the session. On failure the session stays in
// Editing with the draft intact so a retry loses nothing.
func (s *Service) Save(ctx context.Context, contextID string) error {
	store, err := s.widgetStore()
	if err != nil {
		return err
	}
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return err
	}
	draft, _, err := session.beginSave()
	if err != nil {
		return err
	}
	// Plan against the store's current rows rather than the session-start
	// snapshot. A retry after a partial failure then diffs the draft against
	// what actually persisted, so already-applied deletes are not re-issued.
	current, err := store.ListWidgets(ctx, contextID)
	if err != nil {
		session.failSave()
		return fmt.Errorf("dashboard: load layout %s: %w", contextID, err)
	}
	plan := PlanReconcile(current, draft)
	if err := s.reconciler.Apply(ctx, contextID, plan); err != nil {
		session.failSave()
		s.recordTelemetry(ctx, "dashboard.layout.save_failed", map[string]any{
			"context_id": contextID,
			"error":      err.Error(),
		})
		return err
	}
	refreshed, err := store.ListWidgets(ctx, contextID)
	if err != nil {
		session.failSave()
		return fmt.Errorf("dashboard: refresh layout %s: %w", contextID, err)
	}
	session.completeSave(refreshed)
	s.notify(ctx, LayoutEvent{ContextID: contextID, Reason: EventLayoutSaved})
	s.recordTelemetry(ctx, "dashboard.layout.save", map[string]any{
		"context_id": contextID,
		"deletes":    len(plan.Deletes),
		"updates":    len(plan.Updates),
		"creates":    len(plan.Creates),
	})
	s.emitActivity(ctx, "dashboard.layout.save", "layout", contextID, map[string]any{
		"deletes": len(plan.Deletes),
		"updates": len(plan.Updates),
		"creates": len(plan.Creates),
	})
	return nil
}

// Layout resolves the working layout for a context: the draft while editing,
// otherwise the persisted collection.
func (s *Service) Layout(ctx context.Context, contextID string) (Layout, error) {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return Layout{}, err
	}
	return Layout{ContextID: contextID, Widgets: session.Draft()}, nil
}

// AvailableWidgets lists catalog entries not already placed in the working
// layout, for the add-widget picker.
func (s *Service) AvailableWidgets(ctx context.Context, contextID string) ([]CatalogEntry, error) {
	session, err := s.Session(ctx, contextID)
	if err != nil {
		return nil, err
	}
	return s.opts.Catalog.Available(session.PlacedTypes()), nil
}

// SeedLayout writes the starter widgets for contexts with an empty layout.
func (s *Service) SeedLayout(ctx context.Context, contextID string) error {
	store, err := s.widgetStore()
	if err != nil {
		return err
	}
	if contextID == "" {
		return errInvalidContext
	}
	existing, err := store.ListWidgets(ctx, contextID)
	if err != nil {
		return fmt.Errorf("dashboard: load layout %s: %w", contextID, err)
	}
	if len(existing) > 0 {
		return nil
	}
	var seedErr error
	for _, input := range DefaultSeedWidgets() {
		if _, err := store.CreateWidget(ctx, contextID, input); err != nil {
			seedErr = errors.Join(seedErr, err)
		}
	}
	if seedErr != nil {
		return seedErr
	}
	s.recordTelemetry(ctx, "dashboard.layout.seed", map[string]any{"context_id": contextID})
	return nil
}

// NotifyLayoutChanged exposes refresh hook invocation for commands/transports.
func (s *Service) NotifyLayoutChanged(ctx context.Context, event LayoutEvent) error {
	if err := s.opts.RefreshHook.LayoutChanged(ctx, event); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.layout.event", map[string]any{
		"context_id": event.ContextID,
		"widget_id":  event.WidgetID,
		"reason":     event.Reason,
	})
	return nil
}

func (s *Service) notify(ctx context.Context, event LayoutEvent) {
	_ = s.opts.RefreshHook.LayoutChanged(ctx, event)
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

func (s *Service) emitActivity(ctx context.Context, verb, objectType, objectID string, metadata map[string]any) {
	if !s.activity.Enabled() {
		return
	}
	evt := activity.Event{
		Verb:       verb,
		ObjectType: objectType,
		ObjectID:   objectID,
		Metadata:   metadata,
	}
	activityContextFrom(ctx).stamp(&evt)
	_ = s.activity.Emit(ctx, evt)
}

func (s *Service) widgetStore() (WidgetStore, error) {
	if s.opts.WidgetStore == nil {
		return nil, errMissingWidgetStore
	}
	return s.opts.WidgetStore, nil
}

type noopRefreshHook struct{}

func (noopRefreshHook) LayoutChanged(context.Context, LayoutEvent) error {
	return nil
}
