package dashboard

import (
	"context"
	"testing"
)

func TestMemoryWidgetStoreRoundTrip(t *testing.T) {
	store := NewMemoryWidgetStore()
	ctx := context.Background()

	first, err := store.CreateWidget(ctx, "ctx-1", CreateWidgetInput{
		WidgetType: "community.widget.member_stats",
		Title:      "Member Statistics",
		Size:       SizeMedium,
		Position:   1,
	})
	if err != nil {
		t.Fatalf("CreateWidget: %v", err)
	}
	second, err := store.CreateWidget(ctx, "ctx-1", CreateWidgetInput{
		WidgetType: "community.widget.challenges",
		Size:       SizeSmall,
		Position:   0,
	})
	if err != nil {
		t.Fatalf("CreateWidget: %v", err)
	}

	widgets, err := store.ListWidgets(ctx, "ctx-1")
	if err != nil {
		t.Fatalf("ListWidgets: %v", err)
	}
	if len(widgets) != 2 {
		t.Fatalf("expected 2 widgets, got %d", len(widgets))
	}
	if widgets[0].ID != second.ID || widgets[1].ID != first.ID {
		t.Fatalf("list must be ordered by position, got %v", widgetIDs(widgets))
	}

	size := SizeLarge
	if err := store.UpdateWidget(ctx, first.ID, WidgetPatch{Size: &size}); err != nil {
		t.Fatalf("UpdateWidget: %v", err)
	}
	widgets, _ = store.ListWidgets(ctx, "ctx-1")
	if widgets[1].Size != SizeLarge {
		t.Fatalf("expected size patched, got %s", widgets[1].Size)
	}

	if err := store.DeleteWidget(ctx, second.ID); err != nil {
		t.Fatalf("DeleteWidget: %v", err)
	}
	widgets, _ = store.ListWidgets(ctx, "ctx-1")
	if len(widgets) != 1 {
		t.Fatalf("expected 1 widget after delete, got %d", len(widgets))
	}
}

func TestMemoryWidgetStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryWidgetStore()
	if err := store.DeleteWidget(context.Background(), "ghost"); err != nil {
		t.Fatalf("deleting an absent widget should be a no-op, got %v", err)
	}
}

func TestMemoryWidgetStoreUpdateUnknownIDFails(t *testing.T) {
	store := NewMemoryWidgetStore()
	if err := store.UpdateWidget(context.Background(), "ghost", WidgetPatch{}); err == nil {
		t.Fatalf("expected error updating unknown widget")
	}
}

func TestMemoryWidgetStoreIsolatesContexts(t *testing.T) {
	store := NewMemoryWidgetStore()
	ctx := context.Background()
	_, _ = store.CreateWidget(ctx, "ctx-1", CreateWidgetInput{WidgetType: "community.widget.member_stats"})
	widgets, err := store.ListWidgets(ctx, "ctx-2")
	if err != nil {
		t.Fatalf("ListWidgets: %v", err)
	}
	if len(widgets) != 0 {
		t.Fatalf("contexts must not share rows")
	}
}
