package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPlanReconcileAddAndResize(t *testing.T) {
	persisted := []WidgetInstance{
		{ID: "a", WidgetType: "community.widget.member_stats", Size: SizeMedium, Position: 0},
		{ID: "b", WidgetType: "community.widget.upcoming_events", Size: SizeMedium, Position: 1},
	}
	draft := cloneWidgets(persisted)
	draft[1].Size = SizeLarge
	draft = append(draft, WidgetInstance{
		ID:         newDraftID(),
		WidgetType: "community.widget.challenges",
		Size:       SizeMedium,
		Position:   2,
	})

	plan := PlanReconcile(persisted, draft)
	if len(plan.Deletes) != 0 {
		t.Fatalf("expected no deletes, got %v", plan.Deletes)
	}
	if len(plan.Updates) != 1 || plan.Updates[0].WidgetID != "b" {
		t.Fatalf("expected single update for b, got %#v", plan.Updates)
	}
	if plan.Updates[0].Patch.Size == nil || *plan.Updates[0].Patch.Size != SizeLarge {
		t.Fatalf("update should carry the new size, got %#v", plan.Updates[0].Patch)
	}
	if plan.Updates[0].Patch.Position == nil || *plan.Updates[0].Patch.Position != 1 {
		t.Fatalf("every patch must carry the draft rank, got %#v", plan.Updates[0].Patch)
	}
	if len(plan.Creates) != 1 || plan.Creates[0].WidgetType != "community.widget.challenges" {
		t.Fatalf("expected single create, got %#v", plan.Creates)
	}
	if plan.Creates[0].Position != 2 {
		t.Fatalf("create should bake in the draft rank, got %d", plan.Creates[0].Position)
	}
}

func TestPlanReconcileRemovalShiftsSuccessors(t *testing.T) {
	persisted := []WidgetInstance{
		{ID: "a", WidgetType: "community.widget.member_stats", Size: SizeMedium, Position: 0},
		{ID: "b", WidgetType: "community.widget.upcoming_events", Size: SizeMedium, Position: 1},
		{ID: "c", WidgetType: "community.widget.challenges", Size: SizeMedium, Position: 2},
	}
	draft := []WidgetInstance{persisted[0], persisted[2]}

	plan := PlanReconcile(persisted, draft)
	if len(plan.Deletes) != 1 || plan.Deletes[0] != "b" {
		t.Fatalf("expected delete of b, got %v", plan.Deletes)
	}
	if len(plan.Updates) != 1 || plan.Updates[0].WidgetID != "c" {
		t.Fatalf("expected rank update for c only (a untouched), got %#v", plan.Updates)
	}
	if plan.Updates[0].Patch.Position == nil || *plan.Updates[0].Patch.Position != 1 {
		t.Fatalf("c's rank should shift 2 → 1, got %#v", plan.Updates[0].Patch.Position)
	}
	if len(plan.Creates) != 0 {
		t.Fatalf("expected no creates, got %#v", plan.Creates)
	}
}

func TestPlanReconcileUnchangedDraftIsEmpty(t *testing.T) {
	persisted := []WidgetInstance{
		{ID: "a", WidgetType: "community.widget.member_stats", Size: SizeMedium, Position: 0},
		{ID: "b", WidgetType: "community.widget.upcoming_events", Size: SizeLarge, Position: 1},
	}
	plan := PlanReconcile(persisted, cloneWidgets(persisted))
	if !plan.Empty() {
		t.Fatalf("identical draft should produce an empty plan, got %#v", plan)
	}
}

func TestPlanReconcileDetectsConfigChange(t *testing.T) {
	persisted := []WidgetInstance{
		{ID: "a", WidgetType: "community.widget.member_stats", Size: SizeMedium, Position: 0, Configuration: map[string]any{"metric": "total"}},
	}
	draft := cloneWidgets(persisted)
	draft[0].Configuration = map[string]any{"metric": "active"}

	plan := PlanReconcile(persisted, draft)
	if len(plan.Updates) != 1 {
		t.Fatalf("expected config update, got %#v", plan)
	}
	if plan.Updates[0].Patch.Configuration == nil {
		t.Fatalf("patch should carry new configuration")
	}
}

func TestReconcilerAppliesInPhaseOrder(t *testing.T) {
	store := &fakeWidgetStore{}
	reconciler := NewReconciler(store, nil)
	plan := ReconcilePlan{
		Deletes: []string{"b"},
		Updates: []UpdateOp{{WidgetID: "c", Patch: WidgetPatch{}}},
		Creates: []CreateWidgetInput{{WidgetType: "community.widget.challenges"}},
	}
	if err := reconciler.Apply(context.Background(), "ctx-1", plan); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := []string{"delete:b", "update:c", "create:community.widget.challenges"}
	if len(store.calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, store.calls)
	}
	for i, call := range want {
		if store.calls[i] != call {
			t.Fatalf("call %d: expected %s, got %s", i, call, store.calls[i])
		}
	}
}

func TestReconcilerAbortsOnFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	store := &fakeWidgetStore{
		updateFn: func(string, WidgetPatch) error { return boom },
	}
	reconciler := NewReconciler(store, nil)
	plan := ReconcilePlan{
		Deletes: []string{"b"},
		Updates: []UpdateOp{{WidgetID: "c"}},
		Creates: []CreateWidgetInput{{WidgetType: "community.widget.challenges"}},
	}
	err := reconciler.Apply(context.Background(), "ctx-1", plan)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if !strings.Contains(err.Error(), "update widget c") {
		t.Fatalf("error should name the failing operation, got %v", err)
	}
	for _, call := range store.calls {
		if strings.HasPrefix(call, "create:") {
			t.Fatalf("creates must not run after an update failure, calls: %v", store.calls)
		}
	}
}
