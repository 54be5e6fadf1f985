package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/humbl-club/dashlayout/components/dashboard"
	"github.com/humbl-club/dashlayout/components/dashboard/commands"
)

// Executor is the command surface transports call into. Implementations
// dispatch to shared go-command Commanders so HTTP, router, and CLI paths run
// identical logic.
type Executor interface {
	BeginEdit(ctx context.Context, input commands.EditSessionInput) error
	CancelEdit(ctx context.Context, input commands.EditSessionInput) error
	Save(ctx context.Context, input commands.EditSessionInput) error
	Add(ctx context.Context, input commands.AddWidgetInput) error
	Remove(ctx context.Context, input commands.RemoveWidgetInput) error
	Resize(ctx context.Context, input commands.ResizeWidgetInput) error
	Reorder(ctx context.Context, input commands.ReorderWidgetsInput) error
	Move(ctx context.Context, input commands.MoveWidgetInput) error
	Configure(ctx context.Context, input commands.ConfigureWidgetInput) error
}

// CommandExecutor dispatches to configured commanders.
type CommandExecutor struct {
	BeginCommander     gocommand.Commander[commands.EditSessionInput]
	CancelCommander    gocommand.Commander[commands.EditSessionInput]
	SaveCommander      gocommand.Commander[commands.EditSessionInput]
	AddCommander       gocommand.Commander[commands.AddWidgetInput]
	RemoveCommander    gocommand.Commander[commands.RemoveWidgetInput]
	ResizeCommander    gocommand.Commander[commands.ResizeWidgetInput]
	ReorderCommander   gocommand.Commander[commands.ReorderWidgetsInput]
	MoveCommander      gocommand.Commander[commands.MoveWidgetInput]
	ConfigureCommander gocommand.Commander[commands.ConfigureWidgetInput]
}

var _ Executor = (*CommandExecutor)(nil)

var errCommanderMissing = errors.New("httpapi: commander not configured")

// BeginEdit enters edit mode.
func (e *CommandExecutor) BeginEdit(ctx context.Context, input commands.EditSessionInput) error {
	if e.BeginCommander == nil {
		return errCommanderMissing
	}
	return e.BeginCommander.Execute(ctx, input)
}

// CancelEdit discards the draft.
func (e *CommandExecutor) CancelEdit(ctx context.Context, input commands.EditSessionInput) error {
	if e.CancelCommander == nil {
		return errCommanderMissing
	}
	return e.CancelCommander.Execute(ctx, input)
}

// Save reconciles the draft against the store.
func (e *CommandExecutor) Save(ctx context.Context, input commands.EditSessionInput) error {
	if e.SaveCommander == nil {
		return errCommanderMissing
	}
	return e.SaveCommander.Execute(ctx, input)
}

// Add appends a widget to the draft.
func (e *CommandExecutor) Add(ctx context.Context, input commands.AddWidgetInput) error {
	if e.AddCommander == nil {
		return errCommanderMissing
	}
	return e.AddCommander.Execute(ctx, input)
}

// Remove deletes a widget from the draft.
func (e *CommandExecutor) Remove(ctx context.Context, input commands.RemoveWidgetInput) error {
	if e.RemoveCommander == nil {
		return errCommanderMissing
	}
	return e.RemoveCommander.Execute(ctx, input)
}

// Resize cycles a widget's size preset.
func (e *CommandExecutor) Resize(ctx context.Context, input commands.ResizeWidgetInput) error {
	if e.ResizeCommander == nil {
		return errCommanderMissing
	}
	return e.ResizeCommander.Execute(ctx, input)
}

// Reorder applies a pointer-driven move.
func (e *CommandExecutor) Reorder(ctx context.Context, input commands.ReorderWidgetsInput) error {
	if e.ReorderCommander == nil {
		return errCommanderMissing
	}
	return e.ReorderCommander.Execute(ctx, input)
}

// Move applies a keyboard up/down move.
func (e *CommandExecutor) Move(ctx context.Context, input commands.MoveWidgetInput) error {
	if e.MoveCommander == nil {
		return errCommanderMissing
	}
	return e.MoveCommander.Execute(ctx, input)
}

// Configure validates and stores widget configuration.
func (e *CommandExecutor) Configure(ctx context.Context, input commands.ConfigureWidgetInput) error {
	if e.ConfigureCommander == nil {
		return errCommanderMissing
	}
	return e.ConfigureCommander.Execute(ctx, input)
}

// Handlers exposes plain net/http endpoints backed by the executor, for
// applications not using go-router.
type Handlers struct {
	API Executor
}

func (h *Handlers) HandleBeginEdit(w http.ResponseWriter, r *http.Request) {
	h.execSession(w, r, h.API.BeginEdit, http.StatusOK)
}

func (h *Handlers) HandleCancelEdit(w http.ResponseWriter, r *http.Request) {
	h.execSession(w, r, h.API.CancelEdit, http.StatusOK)
}

func (h *Handlers) HandleSave(w http.ResponseWriter, r *http.Request) {
	h.execSession(w, r, h.API.Save, http.StatusOK)
}

func (h *Handlers) execSession(w http.ResponseWriter, r *http.Request, fn func(context.Context, commands.EditSessionInput) error, status int) {
	var payload commands.EditSessionInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := fn(r.Context(), payload); err != nil {
		writeCommandError(w, err)
		return
	}
	w.WriteHeader(status)
}

func (h *Handlers) HandleAddWidget(w http.ResponseWriter, r *http.Request) {
	var payload commands.AddWidgetInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Add(r.Context(), payload); err != nil {
		writeCommandError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleRemoveWidget(w http.ResponseWriter, r *http.Request, contextID, widgetID string) {
	input := commands.RemoveWidgetInput{ContextID: contextID, WidgetID: widgetID}
	if err := h.API.Remove(r.Context(), input); err != nil {
		writeCommandError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleResizeWidget(w http.ResponseWriter, r *http.Request) {
	var payload commands.ResizeWidgetInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Resize(r.Context(), payload); err != nil {
		writeCommandError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleReorderWidgets(w http.ResponseWriter, r *http.Request) {
	var payload commands.ReorderWidgetsInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Reorder(r.Context(), payload); err != nil {
		writeCommandError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleMoveWidget(w http.ResponseWriter, r *http.Request) {
	var payload commands.MoveWidgetInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.API.Move(r.Context(), payload); err != nil {
		writeCommandError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// writeCommandError maps session-state violations to 409 so clients can
// distinguish "retry after the save resolves" from hard failures.
func writeCommandError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dashboard.ErrSessionSaving):
		status = http.StatusConflict
	case errors.Is(err, dashboard.ErrNotEditing):
		status = http.StatusConflict
	}
	http.Error(w, err.Error(), status)
}
