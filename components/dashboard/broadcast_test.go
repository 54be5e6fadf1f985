package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBroadcastHookSubscribe(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	defer cancel()
	event := LayoutEvent{ContextID: "ctx-1", Reason: EventLayoutSaved}
	if err := hook.LayoutChanged(context.Background(), event); err != nil {
		t.Fatalf("LayoutChanged returned error: %v", err)
	}
	select {
	case e := <-ch:
		if e.ContextID != event.ContextID || e.Reason != event.Reason {
			t.Fatalf("unexpected event %+v", e)
		}
	default:
		t.Fatalf("expected event to be delivered")
	}
}

func TestBroadcastHookDropsWhenSubscriberIsFull(t *testing.T) {
	hook := NewBroadcastHook()
	_, cancel := hook.Subscribe()
	defer cancel()
	// Buffered at 8; overflow must not block the publisher.
	for i := 0; i < 20; i++ {
		if err := hook.LayoutChanged(context.Background(), LayoutEvent{ContextID: "ctx-1"}); err != nil {
			t.Fatalf("LayoutChanged returned error: %v", err)
		}
	}
}

type countingResponseWriter struct {
	*httptest.ResponseRecorder
	headerWrites int
}

func (w *countingResponseWriter) WriteHeader(code int) {
	w.headerWrites++
	w.ResponseRecorder.WriteHeader(code)
}

func TestServeWebSocketRejectsPlainRequestOnce(t *testing.T) {
	hook := NewBroadcastHook()
	rec := &countingResponseWriter{ResponseRecorder: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/dashboard/ws", nil)

	hook.ServeWebSocket(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-upgrade request, got %d", rec.Code)
	}
	// The upgrader writes the error response; the hook must not write a second
	// one on top of it.
	if rec.headerWrites != 1 {
		t.Fatalf("expected a single response write, got %d", rec.headerWrites)
	}
}

func TestBroadcastHookCancelClosesChannel(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	cancel()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel after cancel")
	}
	// Cancelling twice is safe.
	cancel()
	if err := hook.LayoutChanged(context.Background(), LayoutEvent{ContextID: "ctx-1"}); err != nil {
		t.Fatalf("publish after cancel returned error: %v", err)
	}
}
