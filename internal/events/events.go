package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"coaching-offers-api/internal/models"
)

// EventType represents the type of event.
type EventType string

const (
	// EventPlanSelected is emitted when a prospect's remembered plan changes.
	EventPlanSelected EventType = "plan.selected"
	// EventLeadGenerated is emitted when a WhatsApp lead message is built.
	EventLeadGenerated EventType = "lead.generated"
	// EventRecommendationComputed is emitted when the quiz engine picks a plan.
	EventRecommendationComputed EventType = "recommendation.computed"
)

// Event represents an event in the system.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Data      interface{}
}

// PlanSelectedData carries the newly remembered plan title.
type PlanSelectedData struct {
	PlanTitle string
}

// LeadGeneratedData carries the payload of a generated lead message.
type LeadGeneratedData struct {
	Payload models.LeadPayload
}

// RecommendationComputedData carries a quiz outcome.
type RecommendationComputedData struct {
	Answers models.QuizAnswers
	Plan    models.Plan
}

// Handler is a function that handles events.
type Handler func(ctx context.Context, event Event) error

// Manager manages event handlers and event publishing.
type Manager struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	enabled  bool
}

// NewManager creates a new event manager.
func NewManager(enabled bool) *Manager {
	return &Manager{
		handlers: make(map[EventType][]Handler),
		enabled:  enabled,
	}
}

// Subscribe subscribes a handler to a specific event type.
func (m *Manager) Subscribe(eventType EventType, handler Handler) {
	if !m.enabled {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Publish publishes an event to all subscribed handlers. Handlers run
// asynchronously so publishing never blocks a request.
func (m *Manager) Publish(ctx context.Context, eventType EventType, data interface{}) {
	if !m.enabled {
		return
	}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}

	for _, handler := range handlers {
		go func(h Handler) {
			_ = h(ctx, event)
		}(handler)
	}
}

// PublishPlanSelected publishes a plan selection change.
func (m *Manager) PublishPlanSelected(ctx context.Context, planTitle string) {
	m.Publish(ctx, EventPlanSelected, PlanSelectedData{PlanTitle: planTitle})
}

// PublishLeadGenerated publishes a lead message generation.
func (m *Manager) PublishLeadGenerated(ctx context.Context, payload models.LeadPayload) {
	m.Publish(ctx, EventLeadGenerated, LeadGeneratedData{Payload: payload})
}

// PublishRecommendationComputed publishes a quiz recommendation outcome.
func (m *Manager) PublishRecommendationComputed(ctx context.Context, answers models.QuizAnswers, plan models.Plan) {
	m.Publish(ctx, EventRecommendationComputed, RecommendationComputedData{
		Answers: answers,
		Plan:    plan,
	})
}

// Shutdown shuts down the event manager.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = false
	m.handlers = make(map[EventType][]Handler)
}
