package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/humbl-club/dashlayout/components/dashboard"
)

// AvailableWidgetsRequest asks for catalog entries not yet placed on the
// context's dashboard, for the add-widget picker.
type AvailableWidgetsRequest struct {
	ContextID string `json:"context_id"`
}

type catalogService interface {
	AvailableWidgets(ctx context.Context, contextID string) ([]dashboard.CatalogEntry, error)
}

// AvailableWidgetsQuery lists addable catalog entries.
type AvailableWidgetsQuery struct {
	service catalogService
}

// NewAvailableWidgetsQuery builds the query.
func NewAvailableWidgetsQuery(service catalogService) *AvailableWidgetsQuery {
	return &AvailableWidgetsQuery{service: service}
}

var _ gocommand.Querier[AvailableWidgetsRequest, []dashboard.CatalogEntry] = (*AvailableWidgetsQuery)(nil)

// Query lists the entries still available for placement.
func (q *AvailableWidgetsQuery) Query(ctx context.Context, req AvailableWidgetsRequest) ([]dashboard.CatalogEntry, error) {
	return q.service.AvailableWidgets(ctx, req.ContextID)
}
