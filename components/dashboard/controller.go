package dashboard

import (
	"context"
	"fmt"
	"io"
)

// LayoutResolver is the slice of Service the controller needs.
type LayoutResolver interface {
	Layout(ctx context.Context, contextID string) (Layout, error)
	Session(ctx context.Context, contextID string) (*EditSession, error)
}

// ControllerOptions wires the controller's collaborators.
type ControllerOptions struct {
	Service  LayoutResolver
	Surface  *Surface
	Renderer Renderer
	Template string
}

// Controller turns resolved layouts into HTTP-ready payloads: the JSON view
// for the client-side grid and the server-rendered HTML page.
type Controller struct {
	service  LayoutResolver
	surface  *Surface
	renderer Renderer
	template string
}

// NewController builds a controller with safe defaults.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = "dashboard"
	}
	if opts.Surface == nil {
		opts.Surface = NewSurface(nil, nil)
	}
	return &Controller{
		service:  opts.Service,
		surface:  opts.Surface,
		renderer: opts.Renderer,
		template: opts.Template,
	}
}

// LayoutPayload resolves the working layout and builds the grid view model.
func (c *Controller) LayoutPayload(ctx context.Context, contextID string) (LayoutView, error) {
	if c.service == nil {
		return LayoutView{}, errMissingWidgetStore
	}
	layout, err := c.service.Layout(ctx, contextID)
	if err != nil {
		return LayoutView{}, err
	}
	editing, dirty := false, false
	if session, err := c.service.Session(ctx, contextID); err == nil {
		state := session.State()
		editing = state == StateEditing || state == StateSaving
		dirty = session.Dirty()
	}
	return c.surface.BuildView(ctx, layout, editing, dirty), nil
}

// RenderTemplate renders the dashboard HTML page into out.
func (c *Controller) RenderTemplate(ctx context.Context, contextID string, out io.Writer) error {
	if c.renderer == nil {
		return fmt.Errorf("dashboard: controller renderer is not configured")
	}
	view, err := c.LayoutPayload(ctx, contextID)
	if err != nil {
		return err
	}
	saving := false
	if session, err := c.service.Session(ctx, contextID); err == nil {
		saving = session.State() == StateSaving
	}
	_, err = c.renderer.Render(c.template, map[string]any{
		"view":   view,
		"saving": saving,
	}, out)
	return err
}
