package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingHook struct {
	events []Event
	err    error
}

func (h *recordingHook) Notify(_ context.Context, evt Event) error {
	h.events = append(h.events, evt)
	return h.err
}

func TestHooksNotifyNormalizesBeforeDelivery(t *testing.T) {
	hook := &recordingHook{}
	hooks := Hooks{hook}

	err := hooks.Notify(context.Background(), Event{
		Verb:    "  dashboard.widget.add  ",
		ActorID: " actor-1 ",
	})
	if err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if len(hook.events) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(hook.events))
	}
	got := hook.events[0]
	if got.Verb != "dashboard.widget.add" || got.ActorID != "actor-1" {
		t.Fatalf("expected trimmed fields, got %+v", got)
	}
	if got.OccurredAt.IsZero() {
		t.Fatalf("expected OccurredAt stamped")
	}
}

func TestHooksNotifyDropsMissingVerb(t *testing.T) {
	hook := &recordingHook{}
	hooks := Hooks{hook}
	if err := hooks.Notify(context.Background(), Event{ActorID: "actor-1"}); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if len(hook.events) != 0 {
		t.Fatalf("events without a verb must be dropped")
	}
}

func TestHooksNotifyStopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	first := &recordingHook{err: boom}
	second := &recordingHook{}
	hooks := Hooks{first, nil, second}

	err := hooks.Notify(context.Background(), Event{Verb: "dashboard.layout.save"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if len(second.events) != 0 {
		t.Fatalf("delivery must stop at the first failing hook")
	}
}

func TestNormalizeEventClonesMetadataAndRecipients(t *testing.T) {
	meta := map[string]any{"widget_type": "community.widget.member_stats"}
	recipients := []string{"user-1"}
	evt := NormalizeEvent(Event{Verb: "dashboard.widget.add", Metadata: meta, Recipients: recipients})

	meta["widget_type"] = "mutated"
	recipients[0] = "mutated"

	if evt.Metadata["widget_type"] != "community.widget.member_stats" {
		t.Fatalf("metadata must be cloned")
	}
	if evt.Recipients[0] != "user-1" {
		t.Fatalf("recipients must be cloned")
	}
}

func TestNormalizeEventKeepsExplicitTimestamp(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	evt := NormalizeEvent(Event{Verb: "dashboard.layout.save", OccurredAt: at})
	if !evt.OccurredAt.Equal(at) {
		t.Fatalf("explicit OccurredAt must be preserved, got %v", evt.OccurredAt)
	}
}

func TestHookFuncAdaptsFunctions(t *testing.T) {
	var got Event
	hook := HookFunc(func(_ context.Context, evt Event) error {
		got = evt
		return nil
	})
	if err := hook.Notify(context.Background(), Event{Verb: "dashboard.widget.remove"}); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if got.Verb != "dashboard.widget.remove" {
		t.Fatalf("unexpected event %+v", got)
	}
}
