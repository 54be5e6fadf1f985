package dashboard

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SessionState identifies where an edit session sits in its lifecycle.
type SessionState string

const (
	StateViewing SessionState = "viewing"
	StateEditing SessionState = "editing"
	StateSaving  SessionState = "saving"
)

var (
	// ErrNotEditing rejects draft mutations while the session is viewing.
	ErrNotEditing = errors.New("dashboard: session is not in edit mode")
	// ErrSessionSaving rejects mutations and re-entrant saves while a save is
	// in flight; the draft is a point-in-time snapshot during that window.
	ErrSessionSaving = errors.New("dashboard: save already in progress")
)

const draftIDPrefix = "draft-"

// newDraftID mints a temporary client-side id for a not-yet-saved widget.
// Permanent ids are assigned by the store on creation.
func newDraftID() string {
	return draftIDPrefix + uuid.NewString()
}

// IsDraftID reports whether id was minted locally and never persisted.
func IsDraftID(id string) bool {
	return strings.HasPrefix(id, draftIDPrefix)
}

// EditSession owns the draft widget collection for one context while editing
// is active. All mutations are draft-local; persisted state is only replaced
// through the reconcile pipeline. The session serializes access itself so a
// transport can call it from handler goroutines.
type EditSession struct {
	mu        sync.Mutex
	contextID string
	catalog   *Catalog

	state     SessionState
	persisted []WidgetInstance
	draft     []WidgetInstance
	dirty     bool
}

// NewEditSession builds a session in the Viewing state seeded from the
// persisted layout.
func NewEditSession(contextID string, catalog *Catalog, persisted []WidgetInstance) *EditSession {
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &EditSession{
		contextID: contextID,
		catalog:   catalog,
		state:     StateViewing,
		persisted: cloneWidgets(persisted),
	}
}

// ContextID returns the owning context for this session.
func (s *EditSession) ContextID() string {
	return s.contextID
}

// State returns the current lifecycle state.
func (s *EditSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dirty reports whether the draft has diverged from the snapshot taken when
// editing began.
func (s *EditSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Persisted returns a copy of the layout snapshot the session was seeded from.
func (s *EditSession) Persisted() []WidgetInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWidgets(s.persisted)
}

// Draft returns a copy of the working collection: the draft while editing,
// otherwise the persisted snapshot.
func (s *EditSession) Draft() []WidgetInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateViewing {
		return cloneWidgets(s.persisted)
	}
	return cloneWidgets(s.draft)
}

// BeginEdit moves Viewing → Editing, snapshotting the persisted layout into a
// fresh draft. Re-entering while already editing keeps the current draft.
func (s *EditSession) BeginEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSaving:
		return ErrSessionSaving
	case StateEditing:
		return nil
	}
	s.draft = cloneWidgets(s.persisted)
	s.dirty = false
	s.state = StateEditing
	return nil
}

// Cancel discards the draft without side effects and returns to Viewing.
func (s *EditSession) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSaving {
		return ErrSessionSaving
	}
	s.draft = nil
	s.dirty = false
	s.state = StateViewing
	return nil
}

// AddWidget appends a widget of the given type to the end of the draft, using
// the catalog's display name and default size and a temporary id. Adding a
// type already present in the draft, or a type the catalog does not know, is
// a silent no-op: duplicates are a display nuisance guarded by the picker,
// not a correctness hazard.
func (s *EditSession) AddWidget(widgetType string) (WidgetInstance, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return WidgetInstance{}, false, err
	}
	entry, ok := s.catalog.Lookup(widgetType)
	if !ok {
		return WidgetInstance{}, false, nil
	}
	for _, w := range s.draft {
		if w.WidgetType == widgetType {
			return WidgetInstance{}, false, nil
		}
	}
	widget := WidgetInstance{
		ID:            newDraftID(),
		WidgetType:    widgetType,
		Title:         entry.Name,
		Size:          entry.DefaultSize,
		Configuration: map[string]any{},
		Position:      len(s.draft),
	}
	s.draft = append(s.draft, widget)
	s.dirty = true
	return widget, true, nil
}

// RemoveWidget deletes the matching draft entry. No-op when id is absent.
func (s *EditSession) RemoveWidget(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return false, err
	}
	for i, w := range s.draft {
		if w.ID == id {
			s.draft = append(s.draft[:i], s.draft[i+1:]...)
			s.dirty = true
			return true, nil
		}
	}
	return false, nil
}

// ResizeWidget advances the matching draft entry one step through the size
// cycle. No-op when id is absent.
func (s *EditSession) ResizeWidget(id string) (SizePreset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return "", false, err
	}
	for i := range s.draft {
		if s.draft[i].ID == id {
			s.draft[i].Size = NextSize(s.draft[i].Size)
			s.dirty = true
			return s.draft[i].Size, true, nil
		}
	}
	return "", false, nil
}

// UpdateWidgetConfig replaces the matching draft entry's configuration. The
// payload is opaque to the session; schema validation happens at the service
// boundary. No-op when id is absent.
func (s *EditSession) UpdateWidgetConfig(id string, config map[string]any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return false, err
	}
	for i := range s.draft {
		if s.draft[i].ID == id {
			s.draft[i].Configuration = config
			s.dirty = true
			return true, nil
		}
	}
	return false, nil
}

// Reorder moves sourceID to targetID's slot via the reorder engine. No-op on
// self-moves and absent ids.
func (s *EditSession) Reorder(sourceID, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return false, err
	}
	return s.applyOrderLocked(MoveID(widgetIDs(s.draft), sourceID, targetID)), nil
}

// MoveWidgetUp is the keyboard equivalent of dragging a widget one slot
// toward the front.
func (s *EditSession) MoveWidgetUp(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return false, err
	}
	return s.applyOrderLocked(MoveUp(widgetIDs(s.draft), id)), nil
}

// MoveWidgetDown is the keyboard equivalent of dragging a widget one slot
// toward the back.
func (s *EditSession) MoveWidgetDown(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return false, err
	}
	return s.applyOrderLocked(MoveDown(widgetIDs(s.draft), id)), nil
}

// PlacedTypes returns the widget types currently in the working collection,
// for filtering the add picker.
func (s *EditSession) PlacedTypes() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	source := s.draft
	if s.state == StateViewing {
		source = s.persisted
	}
	placed := make(map[string]bool, len(source))
	for _, w := range source {
		placed[w.WidgetType] = true
	}
	return placed
}

func (s *EditSession) mutable() error {
	switch s.state {
	case StateEditing:
		return nil
	case StateSaving:
		return ErrSessionSaving
	default:
		return ErrNotEditing
	}
}

func (s *EditSession) applyOrderLocked(order []string) bool {
	before := widgetIDs(s.draft)
	if equalOrder(before, order) {
		return false
	}
	s.draft = applyOrder(s.draft, order)
	s.dirty = true
	return true
}

// beginSave moves Editing → Saving and hands out copies of the draft and the
// session-start snapshot. Further mutations are rejected until the save
// resolves.
func (s *EditSession) beginSave() (draft, persisted []WidgetInstance, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSaving:
		return nil, nil, ErrSessionSaving
	case StateViewing:
		return nil, nil, ErrNotEditing
	}
	s.state = StateSaving
	return cloneWidgets(s.draft), cloneWidgets(s.persisted), nil
}

// completeSave re-seeds the session from the refreshed persisted layout and
// returns to Viewing.
func (s *EditSession) completeSave(refreshed []WidgetInstance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persisted = cloneWidgets(refreshed)
	s.draft = nil
	s.dirty = false
	s.state = StateViewing
}

// failSave returns to Editing with the draft intact so the user can retry
// without losing staged work.
func (s *EditSession) failSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEditing
}

func cloneWidgets(widgets []WidgetInstance) []WidgetInstance {
	out := make([]WidgetInstance, len(widgets))
	for i, w := range widgets {
		out[i] = w
		if w.Configuration != nil {
			cfg := make(map[string]any, len(w.Configuration))
			for k, v := range w.Configuration {
				cfg[k] = v
			}
			out[i].Configuration = cfg
		}
	}
	return out
}

func equalOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
