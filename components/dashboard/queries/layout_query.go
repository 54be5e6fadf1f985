package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/humbl-club/dashlayout/components/dashboard"
)

// LayoutRequest identifies the dashboard to resolve.
type LayoutRequest struct {
	ContextID string `json:"context_id"`
}

type layoutService interface {
	Layout(ctx context.Context, contextID string) (dashboard.Layout, error)
}

// LayoutQuery executes read-only layout resolution: the draft while editing,
// otherwise the persisted collection.
type LayoutQuery struct {
	service layoutService
}

// NewLayoutQuery builds the query.
func NewLayoutQuery(service layoutService) *LayoutQuery {
	return &LayoutQuery{service: service}
}

var _ gocommand.Querier[LayoutRequest, dashboard.Layout] = (*LayoutQuery)(nil)

// Query resolves the working layout for the context.
func (q *LayoutQuery) Query(ctx context.Context, req LayoutRequest) (dashboard.Layout, error) {
	return q.service.Layout(ctx, req.ContextID)
}
