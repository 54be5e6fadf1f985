package dashboard

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryWidgetStore is a concurrency-safe in-memory WidgetStore used by tests
// and the example app. Production deployments adapt their hosted row store to
// the WidgetStore interface instead.
type MemoryWidgetStore struct {
	mu      sync.Mutex
	rows    map[string]map[string]WidgetInstance // contextID → widgetID → row
	nextRow int
}

// NewMemoryWidgetStore creates an empty store.
func NewMemoryWidgetStore() *MemoryWidgetStore {
	return &MemoryWidgetStore{rows: map[string]map[string]WidgetInstance{}}
}

// ListWidgets returns the context's rows ordered by position.
func (s *MemoryWidgetStore) ListWidgets(_ context.Context, contextID string) ([]WidgetInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	widgets := make([]WidgetInstance, 0, len(s.rows[contextID]))
	for _, w := range s.rows[contextID] {
		widgets = append(widgets, w)
	}
	sort.Slice(widgets, func(i, j int) bool {
		if widgets[i].Position != widgets[j].Position {
			return widgets[i].Position < widgets[j].Position
		}
		return widgets[i].ID < widgets[j].ID
	})
	return widgets, nil
}

// CreateWidget assigns a permanent id and stores the row.
func (s *MemoryWidgetStore) CreateWidget(_ context.Context, contextID string, input CreateWidgetInput) (WidgetInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[contextID] == nil {
		s.rows[contextID] = map[string]WidgetInstance{}
	}
	s.nextRow++
	widget := WidgetInstance{
		ID:            fmt.Sprintf("w-%d", s.nextRow),
		WidgetType:    input.WidgetType,
		Title:         input.Title,
		Size:          normalizeSize(input.Size),
		Configuration: input.Configuration,
		Position:      input.Position,
	}
	s.rows[contextID][widget.ID] = widget
	return widget, nil
}

// UpdateWidget patches the stored row. Unknown ids are an error; the
// reconcile pipeline only patches rows it read from this store.
func (s *MemoryWidgetStore) UpdateWidget(_ context.Context, widgetID string, patch WidgetPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for contextID, rows := range s.rows {
		if w, ok := rows[widgetID]; ok {
			if patch.Title != nil {
				w.Title = *patch.Title
			}
			if patch.Size != nil {
				w.Size = normalizeSize(*patch.Size)
			}
			if patch.Position != nil {
				w.Position = *patch.Position
			}
			if patch.Configuration != nil {
				w.Configuration = patch.Configuration
			}
			s.rows[contextID][widgetID] = w
			return nil
		}
	}
	return fmt.Errorf("memstore: widget %s not found", widgetID)
}

// DeleteWidget removes the row. Deleting an absent row is idempotent.
func (s *MemoryWidgetStore) DeleteWidget(_ context.Context, widgetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rows := range s.rows {
		delete(rows, widgetID)
	}
	return nil
}
