package dashboard

import (
	core "github.com/humbl-club/dashlayout/components/dashboard"
)

// Service exposes the underlying components/dashboard.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Catalog re-export for applications registering widget types.
type Catalog = core.Catalog

// WidgetInstance re-export for store implementations.
type WidgetInstance = core.WidgetInstance

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewCatalog proxies to the internal constructor.
func NewCatalog() *Catalog {
	return core.NewCatalog()
}
