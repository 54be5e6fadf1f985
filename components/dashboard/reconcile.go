package dashboard

import (
	"context"
	"fmt"
	"reflect"
)

// UpdateOp patches one surviving widget row.
type UpdateOp struct {
	WidgetID string
	Patch    WidgetPatch
}

// ReconcilePlan is the minimal operation set that makes persisted state match
// the draft. Phases apply in a fixed order to limit partial-failure blast
// radius: deletes first so a later create cannot collide on type uniqueness,
// then updates, then creates.
type ReconcilePlan struct {
	Deletes []string
	Updates []UpdateOp
	Creates []CreateWidgetInput
}

// Empty reports whether applying the plan would issue no store calls.
func (p ReconcilePlan) Empty() bool {
	return len(p.Deletes) == 0 && len(p.Updates) == 0 && len(p.Creates) == 0
}

// PlanReconcile diffs a draft against the persisted snapshot taken at session
// start. A surviving widget gets an update when its size, title or draft rank
// differs from the persisted row; every emitted patch carries the rank so the
// store never has to infer array order. Draft-id widgets become creates with
// their rank baked in.
func PlanReconcile(persisted, draft []WidgetInstance) ReconcilePlan {
	var plan ReconcilePlan

	inDraft := make(map[string]int, len(draft))
	for rank, w := range draft {
		inDraft[w.ID] = rank
	}
	byID := make(map[string]WidgetInstance, len(persisted))
	for _, w := range persisted {
		byID[w.ID] = w
		if _, ok := inDraft[w.ID]; !ok {
			plan.Deletes = append(plan.Deletes, w.ID)
		}
	}

	for rank, w := range draft {
		if IsDraftID(w.ID) {
			plan.Creates = append(plan.Creates, CreateWidgetInput{
				WidgetType:    w.WidgetType,
				Title:         w.Title,
				Size:          w.Size,
				Configuration: w.Configuration,
				Position:      rank,
			})
			continue
		}
		prev, ok := byID[w.ID]
		if !ok {
			// Draft references a row the snapshot never had; leave it to the
			// post-save refresh rather than guessing a patch.
			continue
		}
		patch := WidgetPatch{}
		changed := false
		if w.Size != prev.Size {
			size := w.Size
			patch.Size = &size
			changed = true
		}
		if w.Title != prev.Title {
			title := w.Title
			patch.Title = &title
			changed = true
		}
		if !reflect.DeepEqual(w.Configuration, prev.Configuration) {
			patch.Configuration = w.Configuration
			changed = true
		}
		if rank != prev.Position {
			changed = true
		}
		if changed {
			position := rank
			patch.Position = &position
			plan.Updates = append(plan.Updates, UpdateOp{WidgetID: w.ID, Patch: patch})
		}
	}
	return plan
}

// Reconciler applies plans against the widget store. Each call is awaited
// independently; the first failure aborts the remaining operations and is
// reported upward so the session can stay editable. Partial application is a
// known limitation: the next save replans against a fresh read.
type Reconciler struct {
	store     WidgetStore
	telemetry Telemetry
}

// NewReconciler builds a reconciler over the store.
func NewReconciler(store WidgetStore, telemetry Telemetry) *Reconciler {
	return &Reconciler{store: store, telemetry: normalizeTelemetry(telemetry)}
}

// Apply runs the plan's phases in order: deletes, updates, creates.
func (r *Reconciler) Apply(ctx context.Context, contextID string, plan ReconcilePlan) error {
	if r.store == nil {
		return errMissingWidgetStore
	}
	for _, id := range plan.Deletes {
		if err := r.store.DeleteWidget(ctx, id); err != nil {
			return fmt.Errorf("dashboard: delete widget %s: %w", id, err)
		}
	}
	for _, op := range plan.Updates {
		if err := r.store.UpdateWidget(ctx, op.WidgetID, op.Patch); err != nil {
			return fmt.Errorf("dashboard: update widget %s: %w", op.WidgetID, err)
		}
	}
	for _, input := range plan.Creates {
		// The permanent id is not threaded back; the post-save refresh
		// re-reads the full layout from the store.
		if _, err := r.store.CreateWidget(ctx, contextID, input); err != nil {
			return fmt.Errorf("dashboard: create widget %s: %w", input.WidgetType, err)
		}
	}
	r.telemetry.Record(ctx, "dashboard.layout.reconcile", map[string]any{
		"context_id": contextID,
		"deletes":    len(plan.Deletes),
		"updates":    len(plan.Updates),
		"creates":    len(plan.Creates),
	})
	return nil
}
