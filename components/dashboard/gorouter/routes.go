package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/humbl-club/dashlayout/components/dashboard"
	"github.com/humbl-club/dashlayout/components/dashboard/commands"
	"github.com/humbl-club/dashlayout/components/dashboard/httpapi"
	"github.com/humbl-club/dashlayout/components/dashboard/queries"
)

// ContextResolver extracts the dashboard context id (user, team, tenant) from
// the incoming request.
type ContextResolver func(router.Context) string

// Config wires go-router with dashlayout controllers, APIs, and hooks.
type Config[T any] struct {
	Router          router.Router[T]
	Controller      *dashboard.Controller
	API             httpapi.Executor
	Catalog         *queries.AvailableWidgetsQuery
	Broadcast       *dashboard.BroadcastHook
	ContextResolver ContextResolver
	BasePath        string
	Routes          RouteConfig
}

// RouteConfig customizes the relative paths used for dashboard endpoints.
type RouteConfig struct {
	HTML       string
	Layout     string
	EditBegin  string
	EditCancel string
	Save       string
	Widgets    string
	WidgetID   string
	Resize     string
	Reorder    string
	Move       string
	Configure  string
	Catalog    string
	WebSocket  string
}

// Register mounts dashboard routes (HTML, JSON, REST, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = "/dashboard"
	}
	resolver := cfg.ContextResolver
	if resolver == nil {
		resolver = defaultContextResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		contextID := resolver(ctx)
		var buf bytes.Buffer
		if err := cfg.Controller.RenderTemplate(ctx.Context(), contextID, &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.Layout, router.WrapHandler(func(ctx router.Context) error {
		contextID := resolver(ctx)
		payload, err := cfg.Controller.LayoutPayload(ctx.Context(), contextID)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	if cfg.Catalog != nil {
		group.Get(routes.Catalog, router.WrapHandler(func(ctx router.Context) error {
			entries, err := cfg.Catalog.Query(ctx.Context(), queries.AvailableWidgetsRequest{ContextID: resolver(ctx)})
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			return ctx.JSON(http.StatusOK, entries)
		}))
	}

	if cfg.API != nil {
		registerAPI(group, cfg.API, resolver, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, resolver ContextResolver, routes RouteConfig) {
	r.Post(routes.EditBegin, router.WrapHandler(func(ctx router.Context) error {
		if err := api.BeginEdit(ctx.Context(), commands.EditSessionInput{ContextID: resolver(ctx)}); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "editing"})
	}))

	r.Post(routes.EditCancel, router.WrapHandler(func(ctx router.Context) error {
		if err := api.CancelEdit(ctx.Context(), commands.EditSessionInput{ContextID: resolver(ctx)}); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
	}))

	r.Post(routes.Save, router.WrapHandler(func(ctx router.Context) error {
		if err := api.Save(ctx.Context(), commands.EditSessionInput{ContextID: resolver(ctx)}); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post(routes.Widgets, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.AddWidgetInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ContextID = resolver(ctx)
		if err := api.Add(ctx.Context(), payload); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	r.Delete(routes.WidgetID, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("widget id is required"))
		}
		input := commands.RemoveWidgetInput{ContextID: resolver(ctx), WidgetID: id}
		if err := api.Remove(ctx.Context(), input); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusNoContent, map[string]string{"status": "removed"})
	}))

	r.Post(routes.Resize, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.ResizeWidgetInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ContextID = resolver(ctx)
		if err := api.Resize(ctx.Context(), payload); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "resized"})
	}))

	r.Post(routes.Reorder, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.ReorderWidgetsInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ContextID = resolver(ctx)
		if err := api.Reorder(ctx.Context(), payload); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "reordered"})
	}))

	r.Post(routes.Move, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.MoveWidgetInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ContextID = resolver(ctx)
		if err := api.Move(ctx.Context(), payload); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "moved"})
	}))

	r.Post(routes.Configure, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.ConfigureWidgetInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ContextID = resolver(ctx)
		if err := api.Configure(ctx.Context(), payload); err != nil {
			return respondCommandError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "configured"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *dashboard.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

// defaultContextResolver checks request locals first, then falls back to an
// explicit query parameter.
func defaultContextResolver(ctx router.Context) string {
	if v, ok := ctx.Locals("context_id").(string); ok && v != "" {
		return v
	}
	if v, ok := ctx.Locals("user_id").(string); ok && v != "" {
		return v
	}
	if v := strings.TrimSpace(ctx.Query("context_id")); v != "" {
		return v
	}
	return "default"
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func respondCommandError(ctx router.Context, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, dashboard.ErrNotEditing) || errors.Is(err, dashboard.ErrSessionSaving) {
		status = http.StatusConflict
	}
	return respondError(ctx, status, err)
}

func (cfg Config[T]) routes() RouteConfig {
	return defaultRouteConfig(cfg.Routes)
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/"
	}
	if routes.Layout == "" {
		routes.Layout = "/_layout"
	}
	if routes.EditBegin == "" {
		routes.EditBegin = "/edit/begin"
	}
	if routes.EditCancel == "" {
		routes.EditCancel = "/edit/cancel"
	}
	if routes.Save == "" {
		routes.Save = "/edit/save"
	}
	if routes.Widgets == "" {
		routes.Widgets = "/widgets"
	}
	if routes.WidgetID == "" {
		routes.WidgetID = "/widgets/:id"
	}
	if routes.Resize == "" {
		routes.Resize = "/widgets/resize"
	}
	if routes.Reorder == "" {
		routes.Reorder = "/widgets/reorder"
	}
	if routes.Move == "" {
		routes.Move = "/widgets/move"
	}
	if routes.Configure == "" {
		routes.Configure = "/widgets/configure"
	}
	if routes.Catalog == "" {
		routes.Catalog = "/catalog"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
