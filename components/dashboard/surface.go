package dashboard

import "context"

// Placement positions one widget on the responsive grid.
type Placement struct {
	Widget WidgetInstance `json:"widget"`
	Span   GridSpan       `json:"span"`
	Column int            `json:"column"`
	Row    int            `json:"row"`
}

// ComputePlacements lays widgets out left-to-right across a GridColumns-wide
// grid, wrapping to a new row band when a span does not fit. A band is as
// tall as its tallest widget. Pure function over the ordered collection.
func ComputePlacements(widgets []WidgetInstance) []Placement {
	placements := make([]Placement, 0, len(widgets))
	col, row, bandHeight := 0, 0, 0
	for _, w := range widgets {
		span := SpanFor(w.Size)
		if col+span.Columns > GridColumns {
			col = 0
			row += bandHeight
			bandHeight = 0
		}
		placements = append(placements, Placement{
			Widget: w,
			Span:   span,
			Column: col,
			Row:    row,
		})
		col += span.Columns
		if span.Rows > bandHeight {
			bandHeight = span.Rows
		}
	}
	return placements
}

// WidgetView is the renderable unit the surface hands to templates/JSON.
type WidgetView struct {
	Widget   WidgetInstance `json:"widget"`
	Entry    CatalogEntry   `json:"entry"`
	Fallback bool           `json:"fallback"`
	Span     GridSpan       `json:"span"`
	Column   int            `json:"column"`
	Row      int            `json:"row"`
	Data     WidgetData     `json:"data,omitempty"`
}

// LayoutView is the full payload for one rendered dashboard.
type LayoutView struct {
	ContextID string       `json:"context_id"`
	Editing   bool         `json:"editing"`
	Dirty     bool         `json:"dirty"`
	Columns   int          `json:"columns"`
	Widgets   []WidgetView `json:"widgets"`
}

// Surface computes grid placement and mounts per-type content. Unknown widget
// types render a generic fallback block instead of failing the dashboard.
type Surface struct {
	catalog   *Catalog
	telemetry Telemetry
}

// NewSurface builds a rendering surface over the catalog.
func NewSurface(catalog *Catalog, telemetry Telemetry) *Surface {
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &Surface{catalog: catalog, telemetry: normalizeTelemetry(telemetry)}
}

// BuildView resolves placements and provider content for an ordered widget
// collection. In editing mode the per-widget affordances (resize, remove,
// drag handle) are enabled template-side via the Editing flag.
func (s *Surface) BuildView(ctx context.Context, layout Layout, editing, dirty bool) LayoutView {
	view := LayoutView{
		ContextID: layout.ContextID,
		Editing:   editing,
		Dirty:     dirty,
		Columns:   GridColumns,
		Widgets:   make([]WidgetView, 0, len(layout.Widgets)),
	}
	for _, placement := range ComputePlacements(layout.Widgets) {
		w := placement.Widget
		entry, known := s.catalog.Lookup(w.WidgetType)
		wv := WidgetView{
			Widget:   w,
			Entry:    entry,
			Fallback: !known,
			Span:     placement.Span,
			Column:   placement.Column,
			Row:      placement.Row,
		}
		if wv.Widget.Title == "" && known {
			wv.Widget.Title = entry.Name
		}
		if provider, ok := s.catalog.Provider(w.WidgetType); ok && provider != nil {
			data, err := provider.Fetch(ctx, WidgetContext{ContextID: layout.ContextID, Instance: w})
			if err != nil {
				s.telemetry.Record(ctx, "dashboard.widget.provider_error", map[string]any{
					"widget_type": w.WidgetType,
					"error":       err.Error(),
				})
			} else {
				wv.Data = data
			}
		}
		view.Widgets = append(view.Widgets, wv)
	}
	return view
}
