package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coaching-offers-api/internal/models"
	"coaching-offers-api/internal/service"
	"coaching-offers-api/internal/validation"
)

// Handler provides HTTP handlers for the API.
type Handler struct {
	service     *service.Service
	maxBodySize int64
}

// Options holds options for creating a handler.
type Options struct {
	MaxBodySize int64
}

// DefaultOptions returns default handler options.
func DefaultOptions() Options {
	return Options{
		MaxBodySize: 1 << 20, // 1MB is plenty for quiz and lead payloads
	}
}

// NewHandler creates a new handler instance.
func NewHandler(svc *service.Service) *Handler {
	return NewHandlerWithOptions(svc, DefaultOptions())
}

// NewHandlerWithOptions creates a new handler instance with custom options.
func NewHandlerWithOptions(svc *service.Service, opts Options) *Handler {
	return &Handler{
		service:     svc,
		maxBodySize: opts.MaxBodySize,
	}
}

// Routes mounts every API route on a router.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/offers", func(r chi.Router) {
		r.Get("/", h.ListOffers)
		r.Get("/{slug}", h.GetOffer)
		r.Get("/{slug}/link", h.GetOfferLink)
	})

	r.Route("/plans", func(r chi.Router) {
		r.Get("/", h.ListPlans)
		r.Get("/{slug}", h.GetPlan)
	})

	r.Route("/comparison", func(r chi.Router) {
		r.Get("/", h.GetComparisonTable)
		r.Get("/{tier}", h.GetComparisonByTier)
	})

	r.Post("/quiz/recommendation", h.PostRecommendation)
	r.Post("/lead-message", h.PostLeadMessage)

	r.Get("/content/{type}", h.GetContentSection)

	r.Route("/selection", func(r chi.Router) {
		r.Get("/", h.GetSelection)
		r.Put("/", h.PutSelection)
	})
}

// ListOffers handles GET /offers
func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Offers(r.Context()))
}

// GetOffer handles GET /offers/{slug}, keyed by the public short slug.
func (h *Handler) GetOffer(w http.ResponseWriter, r *http.Request) {
	slug := validation.SanitizeString(chi.URLParam(r, "slug"))

	offer, ok := h.service.OfferByDetailSlug(r.Context(), slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "offer not found")
		return
	}

	h.respondJSON(w, http.StatusOK, offer)
}

// GetOfferLink handles GET /offers/{slug}/link
func (h *Handler) GetOfferLink(w http.ResponseWriter, r *http.Request) {
	slug := validation.SanitizeString(chi.URLParam(r, "slug"))

	link, ok := h.service.OfferLink(r.Context(), slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "offer not found")
		return
	}

	h.respondJSON(w, http.StatusOK, link)
}

// ListPlans handles GET /plans
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Plans())
}

// GetPlan handles GET /plans/{slug}
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	slug := validation.SanitizeString(chi.URLParam(r, "slug"))

	plan, ok := h.service.PlanBySlug(slug)
	if !ok {
		h.respondError(w, http.StatusNotFound, "plan not found")
		return
	}

	h.respondJSON(w, http.StatusOK, plan)
}

// GetComparisonTable handles GET /comparison
func (h *Handler) GetComparisonTable(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.ComparisonTable())
}

// GetComparisonByTier handles GET /comparison/{tier}
func (h *Handler) GetComparisonByTier(w http.ResponseWriter, r *http.Request) {
	raw := validation.SanitizeString(chi.URLParam(r, "tier"))

	tier, err := validation.ValidateTier(raw)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "tier not found")
		return
	}

	h.respondJSON(w, http.StatusOK, h.service.ComparisonByTier(tier))
}

// PostRecommendation handles POST /quiz/recommendation
func (h *Handler) PostRecommendation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var answers models.QuizAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		if err == io.EOF {
			h.respondError(w, http.StatusBadRequest, "request body is required")
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	plan, err := h.service.Recommend(r.Context(), answers)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, models.RecommendationResponse{Plan: plan})
}

// PostLeadMessage handles POST /lead-message
func (h *Handler) PostLeadMessage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var payload models.LeadPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && err != io.EOF {
		h.respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	resp, err := h.service.BuildLeadMessage(r.Context(), payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// GetContentSection handles GET /content/{type}
func (h *Handler) GetContentSection(w http.ResponseWriter, r *http.Request) {
	name := validation.SanitizeString(chi.URLParam(r, "type"))

	section, ok := h.service.ContentSection(r.Context(), name)
	if !ok {
		h.respondError(w, http.StatusNotFound, "unknown content section")
		return
	}

	h.respondJSON(w, http.StatusOK, section)
}

// GetSelection handles GET /selection
func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Selection(r.Context()))
}

// PutSelection handles PUT /selection
func (h *Handler) PutSelection(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req models.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err == io.EOF {
			h.respondError(w, http.StatusBadRequest, "request body is required")
			return
		}
		h.respondError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if req.PlanTitle == "" {
		h.respondError(w, http.StatusBadRequest, "plan_title is required")
		return
	}

	h.service.SetSelection(r.Context(), req.PlanTitle)
	h.respondJSON(w, http.StatusOK, h.service.Selection(r.Context()))
}

// respondJSON sends a JSON response with the given status code.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response with the given status code and message.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, models.ErrorResponse{Error: message})
}
