package dashboard

import (
	"fmt"
	"sort"
	"sync"
)

// CatalogHook lets packages register catalog entries/providers during init().
type CatalogHook func(c *Catalog) error

var (
	globalHookMu sync.Mutex
	globalHooks  []CatalogHook
)

// RegisterCatalogHook registers a hook executed against new catalogs.
func RegisterCatalogHook(h CatalogHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Catalog is the static registry of known widget types: display metadata,
// default sizes, configuration schemas, and per-type content providers.
// It is populated once at startup and read-only afterwards.
type Catalog struct {
	mu           sync.RWMutex
	entries      map[string]CatalogEntry
	providers    map[string]Provider
	manifestMeta map[string]ManifestProvider
}

// NewCatalog builds a catalog seeded with the built-in entries and applies
// global hooks.
func NewCatalog() *Catalog {
	c := &Catalog{
		entries:      map[string]CatalogEntry{},
		providers:    map[string]Provider{},
		manifestMeta: map[string]ManifestProvider{},
	}
	c.registerDefaults()
	_ = c.ApplyHooks()
	return c
}

func (c *Catalog) registerDefaults() {
	for _, entry := range DefaultCatalogEntries() {
		_ = c.RegisterEntry(entry)
		if provider, ok := defaultProviders[entry.WidgetType]; ok {
			_ = c.RegisterProvider(entry.WidgetType, provider)
		}
	}
}

// ApplyHooks executes registered catalog hooks.
func (c *Catalog) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(c); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEntry stores widget type metadata.
func (c *Catalog) RegisterEntry(entry CatalogEntry) error {
	if entry.WidgetType == "" {
		return fmt.Errorf("catalog entry widget type is required")
	}
	entry.DefaultSize = normalizeSize(entry.DefaultSize)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entry.WidgetType] = entry
	return nil
}

// RegisterProvider associates a content provider with a catalog entry.
func (c *Catalog) RegisterProvider(widgetType string, provider Provider) error {
	if widgetType == "" {
		return fmt.Errorf("widget type is required to register provider")
	}
	if provider == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[widgetType]; !ok {
		return fmt.Errorf("catalog entry %s not found", widgetType)
	}
	c.providers[widgetType] = provider
	return nil
}

// Lookup fetches a catalog entry by widget type. Callers treat a miss as
// "render a generic placeholder", never as an error.
func (c *Catalog) Lookup(widgetType string) (CatalogEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[widgetType]
	return entry, ok
}

// Provider fetches the content provider for a widget type.
func (c *Catalog) Provider(widgetType string) (Provider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	provider, ok := c.providers[widgetType]
	return provider, ok
}

// ProviderMetadata returns any manifest metadata registered for a widget type.
func (c *Catalog) ProviderMetadata(widgetType string) (ManifestProvider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	meta, ok := c.manifestMeta[widgetType]
	return meta, ok
}

// Entries returns all registered entries sorted by widget type.
func (c *Catalog) Entries() []CatalogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := make([]CatalogEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].WidgetType < entries[j].WidgetType
	})
	return entries
}

// Available returns entries whose widget type is not in excluding. The add
// picker uses this to offer only not-yet-placed types.
func (c *Catalog) Available(excluding map[string]bool) []CatalogEntry {
	all := c.Entries()
	available := make([]CatalogEntry, 0, len(all))
	for _, entry := range all {
		if excluding[entry.WidgetType] {
			continue
		}
		available = append(available, entry)
	}
	return available
}

func (c *Catalog) recordProviderMetadata(widgetType string, meta ManifestProvider) {
	if meta.isZero() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.manifestMeta[widgetType] = meta
}
