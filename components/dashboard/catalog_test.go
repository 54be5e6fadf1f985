package dashboard

import (
	"context"
	"testing"
)

func TestCatalogSeedsDefaults(t *testing.T) {
	catalog := NewCatalog()
	entries := catalog.Entries()
	if len(entries) == 0 {
		t.Fatalf("expected built-in entries")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].WidgetType > entries[i].WidgetType {
			t.Fatalf("entries must be sorted by widget type")
		}
	}
	entry, ok := catalog.Lookup("community.widget.member_stats")
	if !ok {
		t.Fatalf("expected member stats entry")
	}
	if !ValidSize(entry.DefaultSize) {
		t.Fatalf("default size must be a valid preset, got %q", entry.DefaultSize)
	}
}

func TestCatalogLookupMissIsNotAnError(t *testing.T) {
	catalog := NewCatalog()
	if _, ok := catalog.Lookup("does.not.exist"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestCatalogRegisterEntryNormalizesSize(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.RegisterEntry(CatalogEntry{WidgetType: "demo.widget.x", Name: "X", DefaultSize: "huge"}); err != nil {
		t.Fatalf("RegisterEntry: %v", err)
	}
	entry, _ := catalog.Lookup("demo.widget.x")
	if entry.DefaultSize != SizeSmall {
		t.Fatalf("unknown size should normalize to small, got %s", entry.DefaultSize)
	}
}

func TestCatalogRegisterEntryRequiresType(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.RegisterEntry(CatalogEntry{Name: "Nameless"}); err == nil {
		t.Fatalf("expected error for missing widget type")
	}
}

func TestCatalogRegisterProviderRequiresEntry(t *testing.T) {
	catalog := NewCatalog()
	provider := ProviderFunc(func(context.Context, WidgetContext) (WidgetData, error) {
		return WidgetData{}, nil
	})
	if err := catalog.RegisterProvider("demo.widget.missing", provider); err == nil {
		t.Fatalf("expected error when entry is not registered")
	}
	if err := catalog.RegisterProvider("community.widget.member_stats", provider); err != nil {
		t.Fatalf("RegisterProvider: %v", err)
	}
}

func TestCatalogAvailableExcludesPlacedTypes(t *testing.T) {
	catalog := NewCatalog()
	all := catalog.Entries()
	placed := map[string]bool{all[0].WidgetType: true}
	available := catalog.Available(placed)
	if len(available) != len(all)-1 {
		t.Fatalf("expected %d available entries, got %d", len(all)-1, len(available))
	}
	for _, entry := range available {
		if placed[entry.WidgetType] {
			t.Fatalf("placed type %s leaked into available list", entry.WidgetType)
		}
	}
}

func TestCatalogHooksRunOnNewCatalogs(t *testing.T) {
	RegisterCatalogHook(func(c *Catalog) error {
		return c.RegisterEntry(CatalogEntry{WidgetType: "hooked.widget.extra", Name: "Extra"})
	})
	catalog := NewCatalog()
	if _, ok := catalog.Lookup("hooked.widget.extra"); !ok {
		t.Fatalf("expected hook-registered entry")
	}
}
