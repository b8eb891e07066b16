// Package state remembers the last plan a prospect selected, for continuity
// across pages. Last-write-wins, no expiry, injected as a dependency so
// callers can swap it in tests.
package state

import (
	"context"
	"sync"

	"coaching-offers-api/internal/events"
)

// Store is a single-key value store with change notification.
type Store interface {
	Get(ctx context.Context) (string, bool)
	Set(ctx context.Context, planTitle string)
}

// MemoryStore is the in-process implementation. Sets publish a plan.selected
// event so other listeners learn about the update.
type MemoryStore struct {
	mu     sync.RWMutex
	title  string
	set    bool
	events *events.Manager
}

// NewMemoryStore creates a store publishing changes on the given manager.
func NewMemoryStore(ev *events.Manager) *MemoryStore {
	return &MemoryStore{events: ev}
}

// Get returns the remembered plan title, if one was ever set.
func (s *MemoryStore) Get(ctx context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title, s.set
}

// Set overwrites the remembered plan title and notifies listeners.
func (s *MemoryStore) Set(ctx context.Context, planTitle string) {
	s.mu.Lock()
	s.title = planTitle
	s.set = true
	s.mu.Unlock()

	if s.events != nil {
		s.events.PublishPlanSelected(ctx, planTitle)
	}
}
