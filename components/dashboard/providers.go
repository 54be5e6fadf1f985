package dashboard

import "context"

// defaultProviders backs the built-in catalog entries with demo data so the
// example app and tests render without wiring real backends. Production
// deployments register their own providers per type.
var defaultProviders = map[string]Provider{
	"community.widget.member_stats": ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		return WidgetData{
			"metric": meta.Instance.Configuration["metric"],
			"values": map[string]int{"total": 482, "active": 319, "new": 14},
		}, nil
	}),
	"community.widget.upcoming_events": ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		limit := intConfig(meta.Instance.Configuration, "limit", 5)
		events := []map[string]any{
			{"title": "Morning Run Club", "starts": "2026-09-02T07:00:00Z", "attendees": 18},
			{"title": "Book Circle", "starts": "2026-09-04T18:30:00Z", "attendees": 9},
			{"title": "Wellness Workshop", "starts": "2026-09-07T10:00:00Z", "attendees": 26},
		}
		if limit < len(events) {
			events = events[:limit]
		}
		return WidgetData{"events": events}, nil
	}),
	"community.widget.recent_messages": ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		limit := intConfig(meta.Instance.Configuration, "limit", 10)
		return WidgetData{
			"limit":  limit,
			"unread": 3,
		}, nil
	}),
	"community.widget.loyalty_points": ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		return WidgetData{
			"balance": 1240,
			"period":  stringConfig(meta.Instance.Configuration, "period", "30d"),
			"earned":  85,
		}, nil
	}),
	"community.widget.points_history": NewPointsChartProvider(nil),
	"community.widget.social_feed": ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		limit := intConfig(meta.Instance.Configuration, "limit", 10)
		return WidgetData{"limit": limit, "posts": []map[string]any{}}, nil
	}),
	"community.widget.challenges": ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		return WidgetData{
			"status": stringConfig(meta.Instance.Configuration, "status", "active"),
			"challenges": []map[string]any{
				{"name": "10k Steps", "progress": 0.64},
				{"name": "Hydration Week", "progress": 0.8},
			},
		}, nil
	}),
	"community.widget.quick_actions": ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		return WidgetData{
			"actions": []map[string]any{
				{"label": "Create event", "route": "/events/new", "icon": "calendar-plus"},
				{"label": "New post", "route": "/feed/new", "icon": "edit"},
				{"label": "Invite member", "route": "/members/invite", "icon": "user-plus"},
			},
		}, nil
	}),
}

func intConfig(cfg map[string]any, key string, fallback int) int {
	switch v := cfg[key].(type) {
	case int:
		if v > 0 {
			return v
		}
	case float64:
		if v > 0 {
			return int(v)
		}
	}
	return fallback
}

func stringConfig(cfg map[string]any, key, fallback string) string {
	if v, ok := cfg[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
