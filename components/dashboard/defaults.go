package dashboard

var defaultCatalogEntries = []CatalogEntry{
	{
		WidgetType:  "community.widget.member_stats",
		Name:        "Member Statistics",
		Description: "High-level membership metrics",
		Icon:        "users",
		Category:    "stats",
		DefaultSize: SizeMedium,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"metric": map[string]any{"type": "string", "enum": []string{"total", "active", "new"}, "default": "total"},
			},
			"additionalProperties": false,
		},
	},
	{
		WidgetType:  "community.widget.upcoming_events",
		Name:        "Upcoming Events",
		Description: "Next scheduled community events",
		Icon:        "calendar",
		Category:    "events",
		DefaultSize: SizeLarge,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit":     map[string]any{"type": "integer", "minimum": 1, "maximum": 20, "default": 5},
				"show_past": map[string]any{"type": "boolean", "default": false},
			},
			"additionalProperties": false,
		},
	},
	{
		WidgetType:  "community.widget.recent_messages",
		Name:        "Recent Messages",
		Description: "Latest direct and group messages",
		Icon:        "mail",
		Category:    "messaging",
		DefaultSize: SizeMedium,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{"type": "integer", "minimum": 1, "maximum": 50, "default": 10},
			},
			"additionalProperties": false,
		},
	},
	{
		WidgetType:  "community.widget.loyalty_points",
		Name:        "Loyalty Points",
		Description: "Points balance and recent earnings",
		Icon:        "award",
		Category:    "loyalty",
		DefaultSize: SizeSmall,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"period": map[string]any{"type": "string", "enum": []string{"7d", "30d", "90d"}, "default": "30d"},
			},
			"additionalProperties": false,
		},
	},
	{
		WidgetType:  "community.widget.points_history",
		Name:        "Points History",
		Description: "Loyalty points earned over time",
		Icon:        "trending-up",
		Category:    "loyalty",
		DefaultSize: SizeLarge,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"period": map[string]any{"type": "string", "enum": []string{"7d", "30d", "90d", "180d"}, "default": "30d"},
				"theme":  map[string]any{"type": "string"},
			},
			"additionalProperties": false,
		},
	},
	{
		WidgetType:  "community.widget.social_feed",
		Name:        "Social Feed",
		Description: "Latest posts from the community feed",
		Icon:        "message-circle",
		Category:    "social",
		DefaultSize: SizeFull,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit":         map[string]any{"type": "integer", "minimum": 1, "maximum": 25, "default": 10},
				"include_media": map[string]any{"type": "boolean", "default": true},
			},
			"additionalProperties": false,
		},
	},
	{
		WidgetType:  "community.widget.challenges",
		Name:        "Active Challenges",
		Description: "Wellness challenges in progress",
		Icon:        "target",
		Category:    "loyalty",
		DefaultSize: SizeMedium,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status": map[string]any{"type": "string", "enum": []string{"active", "upcoming", "all"}, "default": "active"},
			},
			"additionalProperties": false,
		},
	},
	{
		WidgetType:  "community.widget.quick_actions",
		Name:        "Quick Actions",
		Description: "Common operator shortcuts",
		Icon:        "zap",
		Category:    "actions",
		DefaultSize: SizeSmall,
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"actions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "object"},
				},
			},
		},
	},
}

var defaultSeedWidgets = []CreateWidgetInput{
	{WidgetType: "community.widget.member_stats", Title: "Member Statistics", Size: SizeMedium, Configuration: map[string]any{"metric": "total"}, Position: 0},
	{WidgetType: "community.widget.upcoming_events", Title: "Upcoming Events", Size: SizeLarge, Configuration: map[string]any{"limit": 5}, Position: 1},
	{WidgetType: "community.widget.quick_actions", Title: "Quick Actions", Size: SizeSmall, Configuration: map[string]any{}, Position: 2},
}

// DefaultCatalogEntries returns copies of the built-in catalog entries.
func DefaultCatalogEntries() []CatalogEntry {
	out := make([]CatalogEntry, len(defaultCatalogEntries))
	copy(out, defaultCatalogEntries)
	return out
}

// DefaultSeedWidgets returns starter widget rows for a fresh dashboard.
func DefaultSeedWidgets() []CreateWidgetInput {
	out := make([]CreateWidgetInput, len(defaultSeedWidgets))
	copy(out, defaultSeedWidgets)
	return out
}
