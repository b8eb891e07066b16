package state

import (
	"context"
	"testing"
	"time"

	"coaching-offers-api/internal/events"
)

func TestMemoryStore_GetBeforeSet(t *testing.T) {
	s := NewMemoryStore(nil)

	if _, ok := s.Get(context.Background()); ok {
		t.Error("Expected no remembered plan before first Set")
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	s.Set(ctx, "PROGRAMA BASE")
	s.Set(ctx, "MENTORÍA 1:1")

	got, ok := s.Get(ctx)
	if !ok {
		t.Fatal("Expected a remembered plan")
	}
	if got != "MENTORÍA 1:1" {
		t.Errorf("Expected last write to win, got %q", got)
	}
}

func TestMemoryStore_NotifiesListeners(t *testing.T) {
	ev := events.NewManager(true)
	s := NewMemoryStore(ev)

	notified := make(chan string, 1)
	ev.Subscribe(events.EventPlanSelected, func(ctx context.Context, e events.Event) error {
		data := e.Data.(events.PlanSelectedData)
		notified <- data.PlanTitle
		return nil
	})

	s.Set(context.Background(), "PROGRAMA TRANSFORMACIÓN")

	select {
	case title := <-notified:
		if title != "PROGRAMA TRANSFORMACIÓN" {
			t.Errorf("Expected notification with plan title, got %q", title)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected plan.selected notification")
	}
}
