package dashboard

import (
	"context"

	"github.com/humbl-club/dashlayout/pkg/activity"
)

// ActivityContext identifies who is editing the dashboard: the acting
// operator, the member whose trail records the edit, and the owning tenant.
// Transports resolve these from the request and stash them on the context so
// service signatures stay free of identity plumbing.
type ActivityContext struct {
	ActorID  string
	UserID   string
	TenantID string
}

// stamp copies the identifiers onto an outgoing activity event.
func (a ActivityContext) stamp(evt *activity.Event) {
	evt.ActorID = a.ActorID
	evt.UserID = a.UserID
	evt.TenantID = a.TenantID
}

type activityContextKey struct{}

// ContextWithActivity returns a context carrying the activity identifiers.
func ContextWithActivity(ctx context.Context, meta ActivityContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, activityContextKey{}, meta)
}

func activityContextFrom(ctx context.Context) ActivityContext {
	if ctx == nil {
		return ActivityContext{}
	}
	if meta, ok := ctx.Value(activityContextKey{}).(ActivityContext); ok {
		return meta
	}
	return ActivityContext{}
}
