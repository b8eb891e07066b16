package service

import (
	"context"
	"fmt"

	"coaching-offers-api/internal/catalog"
	"coaching-offers-api/internal/cms"
	"coaching-offers-api/internal/comparison"
	"coaching-offers-api/internal/events"
	"coaching-offers-api/internal/features"
	"coaching-offers-api/internal/lead"
	"coaching-offers-api/internal/models"
	"coaching-offers-api/internal/offers"
	"coaching-offers-api/internal/quiz"
	"coaching-offers-api/internal/state"
	"coaching-offers-api/internal/validation"
)

// Service provides the business logic of the coaching offers API.
type Service struct {
	store     *catalog.Store
	projector *offers.Projector
	engine    *quiz.Engine
	gateway   *cms.Gateway
	selection state.Store
	events    *events.Manager
	flags     *features.Manager
}

// NewService wires the core components together.
func NewService(store *catalog.Store, gateway *cms.Gateway, selection state.Store, ev *events.Manager, flags *features.Manager) (*Service, error) {
	engine, err := quiz.NewEngine(store)
	if err != nil {
		return nil, fmt.Errorf("failed to build recommendation engine: %w", err)
	}

	return &Service{
		store:     store,
		projector: offers.NewProjector(store),
		engine:    engine,
		gateway:   gateway,
		selection: selection,
		events:    ev,
		flags:     flags,
	}, nil
}

// Offers returns the public offer catalog. When CMS content is enabled and
// documents are available they drive the projection; otherwise the static
// catalog does. A failed CMS fetch therefore degrades to static offers.
func (s *Service) Offers(ctx context.Context) []models.Offer {
	if s.flags.IsEnabled(features.FeatureCMSContent) && s.gateway.Enabled() {
		if docs := s.gateway.Plans(ctx); len(docs) > 0 {
			return s.projector.FromCMS(docs)
		}
	}
	return s.projector.Static()
}

// OfferByDetailSlug resolves a public short slug against the current offers.
func (s *Service) OfferByDetailSlug(ctx context.Context, short string) (models.Offer, bool) {
	return offers.ByDetailSlug(s.Offers(ctx), short)
}

// OfferLink returns the primary CTA destination for a short slug.
func (s *Service) OfferLink(ctx context.Context, short string) (models.OfferLinkResponse, bool) {
	offer, ok := s.OfferByDetailSlug(ctx, short)
	if !ok {
		return models.OfferLinkResponse{}, false
	}
	return models.OfferLinkResponse{
		Slug:    offer.Slug,
		CTAType: offer.CTAType,
		Href:    offers.PrimaryHref(offer),
	}, true
}

// Plans returns the quiz-facing plan catalog.
func (s *Service) Plans() []models.Plan {
	return s.store.Plans()
}

// PlanBySlug looks up a plan by slug.
func (s *Service) PlanBySlug(slug string) (models.Plan, bool) {
	return s.store.PlanBySlug(slug)
}

// ComparisonTable returns the full ordered comparison table.
func (s *Service) ComparisonTable() []comparison.Row {
	return comparison.Rows()
}

// ComparisonByTier returns the comparison record of one tier.
func (s *Service) ComparisonByTier(tier models.Tier) models.OfferComparison {
	return comparison.ByTier(tier)
}

// Recommend maps a completed quiz answer set to one plan, remembers its
// title for cross-page continuity, and notifies listeners.
func (s *Service) Recommend(ctx context.Context, answers models.QuizAnswers) (models.Plan, error) {
	if err := validation.ValidateQuizAnswers(answers); err != nil {
		return models.Plan{}, err
	}
	if !quiz.IsComplete(answers) {
		return models.Plan{}, &validation.ValidationError{Field: "answers", Message: "all four answers are required"}
	}

	plan := s.engine.Recommend(answers)

	s.selection.Set(ctx, plan.Title)
	s.events.PublishRecommendationComputed(ctx, answers, plan)

	return plan, nil
}

// BuildLeadMessage renders the WhatsApp lead message and deep link for a
// sanitized payload.
func (s *Service) BuildLeadMessage(ctx context.Context, payload models.LeadPayload) (models.LeadMessageResponse, error) {
	payload, err := validation.SanitizeLeadPayload(payload)
	if err != nil {
		return models.LeadMessageResponse{}, err
	}

	message := lead.BuildMessage(payload)
	s.events.PublishLeadGenerated(ctx, payload)

	return models.LeadMessageResponse{
		Message:     message,
		WhatsAppURL: lead.WhatsAppURL(message),
	}, nil
}

// Selection returns the remembered plan title, if any.
func (s *Service) Selection(ctx context.Context) models.SelectionResponse {
	title, ok := s.selection.Get(ctx)
	return models.SelectionResponse{PlanTitle: title, Set: ok}
}

// SetSelection overwrites the remembered plan title.
func (s *Service) SetSelection(ctx context.Context, planTitle string) {
	s.selection.Set(ctx, validation.SanitizeString(planTitle))
}

// ContentSection returns a raw CMS section by its public name.
func (s *Service) ContentSection(ctx context.Context, name string) (interface{}, bool) {
	return s.gateway.Section(ctx, name)
}
