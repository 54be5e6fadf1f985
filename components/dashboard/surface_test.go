package dashboard

import (
	"context"
	"errors"
	"testing"
)

func TestComputePlacementsWrapsRows(t *testing.T) {
	widgets := []WidgetInstance{
		{ID: "a", Size: SizeMedium}, // 2×1
		{ID: "b", Size: SizeMedium}, // 2×1, fills the row
		{ID: "c", Size: SizeLarge},  // 2×2, wraps
		{ID: "d", Size: SizeSmall},  // 1×1, fits beside c
	}
	placements := ComputePlacements(widgets)

	if placements[0].Column != 0 || placements[0].Row != 0 {
		t.Fatalf("a misplaced: %+v", placements[0])
	}
	if placements[1].Column != 2 || placements[1].Row != 0 {
		t.Fatalf("b misplaced: %+v", placements[1])
	}
	if placements[2].Column != 0 || placements[2].Row != 1 {
		t.Fatalf("c should wrap to a new band: %+v", placements[2])
	}
	if placements[3].Column != 2 || placements[3].Row != 1 {
		t.Fatalf("d should sit beside c: %+v", placements[3])
	}
}

func TestComputePlacementsBandHeight(t *testing.T) {
	widgets := []WidgetInstance{
		{ID: "a", Size: SizeLarge}, // 2×2
		{ID: "b", Size: SizeSmall}, // 1×1
		{ID: "c", Size: SizeFull},  // 4×2, wraps past the 2-row band
	}
	placements := ComputePlacements(widgets)
	if placements[2].Row != 2 {
		t.Fatalf("full widget should start below the tallest widget in the band, got row %d", placements[2].Row)
	}
}

func TestComputePlacementsNeverOverflowsGrid(t *testing.T) {
	widgets := []WidgetInstance{
		{ID: "a", Size: SizeFull},
		{ID: "b", Size: SizeLarge},
		{ID: "c", Size: SizeLarge},
		{ID: "d", Size: SizeSmall},
		{ID: "e", Size: SizeMedium},
	}
	for _, p := range ComputePlacements(widgets) {
		if p.Column+p.Span.Columns > GridColumns {
			t.Fatalf("widget %s overflows the grid: col %d span %d", p.Widget.ID, p.Column, p.Span.Columns)
		}
	}
}

func TestSurfaceUnknownTypeRendersFallback(t *testing.T) {
	surface := NewSurface(NewCatalog(), nil)
	layout := Layout{
		ContextID: "ctx-1",
		Widgets: []WidgetInstance{
			{ID: "w1", WidgetType: "ghost.widget.from_the_future", Size: SizeMedium},
		},
	}
	view := surface.BuildView(context.Background(), layout, false, false)
	if len(view.Widgets) != 1 {
		t.Fatalf("unknown type must still render, got %d widgets", len(view.Widgets))
	}
	if !view.Widgets[0].Fallback {
		t.Fatalf("expected fallback flag for unknown type")
	}
}

func TestSurfaceResolvesProviderData(t *testing.T) {
	catalog := NewCatalog()
	surface := NewSurface(catalog, nil)
	layout := Layout{
		ContextID: "ctx-1",
		Widgets: []WidgetInstance{
			{ID: "w1", WidgetType: "community.widget.member_stats", Size: SizeMedium},
		},
	}
	view := surface.BuildView(context.Background(), layout, false, false)
	if view.Widgets[0].Data == nil {
		t.Fatalf("expected provider data for known type")
	}
	if view.Widgets[0].Fallback {
		t.Fatalf("known type must not fall back")
	}
}

func TestSurfaceProviderErrorIsNonFatal(t *testing.T) {
	catalog := NewCatalog()
	_ = catalog.RegisterEntry(CatalogEntry{WidgetType: "demo.widget.broken", Name: "Broken"})
	_ = catalog.RegisterProvider("demo.widget.broken", ProviderFunc(func(context.Context, WidgetContext) (WidgetData, error) {
		return nil, errors.New("upstream down")
	}))
	telemetry := &testTelemetry{}
	surface := NewSurface(catalog, telemetry)

	view := surface.BuildView(context.Background(), Layout{
		ContextID: "ctx-1",
		Widgets:   []WidgetInstance{{ID: "w1", WidgetType: "demo.widget.broken", Size: SizeSmall}},
	}, false, false)

	if len(view.Widgets) != 1 {
		t.Fatalf("provider failure must not drop the widget")
	}
	if view.Widgets[0].Data != nil {
		t.Fatalf("failed provider should leave data empty")
	}
	if telemetry.calls == 0 {
		t.Fatalf("expected provider error recorded")
	}
}

func TestSurfaceEditingFlagsPassThrough(t *testing.T) {
	surface := NewSurface(NewCatalog(), nil)
	view := surface.BuildView(context.Background(), Layout{ContextID: "ctx-1"}, true, true)
	if !view.Editing || !view.Dirty {
		t.Fatalf("expected editing/dirty flags on the view")
	}
	if view.Columns != GridColumns {
		t.Fatalf("expected %d columns, got %d", GridColumns, view.Columns)
	}
}

func TestSurfaceTitleFallsBackToCatalogName(t *testing.T) {
	surface := NewSurface(NewCatalog(), nil)
	view := surface.BuildView(context.Background(), Layout{
		ContextID: "ctx-1",
		Widgets:   []WidgetInstance{{ID: "w1", WidgetType: "community.widget.challenges", Size: SizeMedium}},
	}, false, false)
	if view.Widgets[0].Widget.Title == "" {
		t.Fatalf("expected catalog name as title fallback")
	}
}
