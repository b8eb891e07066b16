package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"coaching-offers-api/internal/cache"
	"coaching-offers-api/internal/catalog"
	"coaching-offers-api/internal/cms"
	"coaching-offers-api/internal/events"
	"coaching-offers-api/internal/features"
	"coaching-offers-api/internal/models"
	"coaching-offers-api/internal/service"
	"coaching-offers-api/internal/state"
)

func setupTestHandler(t *testing.T) *Handler {
	store, err := catalog.NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	gateway := cms.NewGateway(cms.Config{FreshnessTTL: 30 * time.Second}, cache.NewInMemoryCache())
	ev := events.NewManager(false)
	flags := features.NewManager()

	svc, err := service.NewService(store, gateway, state.NewMemoryStore(ev), ev, flags)
	if err != nil {
		t.Fatalf("Failed to build service: %v", err)
	}

	return NewHandler(svc)
}

func setupRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	h.Routes(r)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return r
}

func TestHealthCheck(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
	if rr.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", rr.Body.String())
	}
}

func TestListOffers(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/offers", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var offerList []models.Offer
	if err := json.Unmarshal(rr.Body.Bytes(), &offerList); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(offerList) != 4 {
		t.Fatalf("Expected 4 offers, got %d", len(offerList))
	}

	for _, offer := range offerList {
		wantCheckout := offer.Theme == models.TierInicio || offer.Theme == models.TierBase
		if (offer.CTAType == models.CTACheckout) != wantCheckout {
			t.Errorf("Tier %s: wrong cta_type %s", offer.Theme, offer.CTAType)
		}
	}
}

func TestGetOffer_ByShortSlug(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/offers/transformacion", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var offer models.Offer
	if err := json.Unmarshal(rr.Body.Bytes(), &offer); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if offer.Slug != "programa-transformacion" {
		t.Errorf("Expected programa-transformacion, got %s", offer.Slug)
	}
}

func TestGetOffer_UnknownSlugIs404(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/offers/elite", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestGetOfferLink_LeadTier(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/offers/mentoria/link", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var link models.OfferLinkResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &link); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if link.CTAType != models.CTALead {
		t.Errorf("Expected lead cta, got %s", link.CTAType)
	}
	if !bytes.Contains([]byte(link.Href), []byte("api.whatsapp.com")) {
		t.Errorf("Expected WhatsApp href, got %s", link.Href)
	}
}

func TestListPlansAndGetPlan(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/plans", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var planList []models.Plan
	if err := json.Unmarshal(rr.Body.Bytes(), &planList); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(planList) == 0 {
		t.Fatal("Expected at least one plan")
	}

	req = httptest.NewRequest("GET", "/plans/"+planList[0].Slug, nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200 for %s, got %d", planList[0].Slug, rr.Code)
	}

	req = httptest.NewRequest("GET", "/plans/no-such-plan", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestGetComparison(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/comparison/base", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var c models.OfferComparison
	if err := json.Unmarshal(rr.Body.Bytes(), &c); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if c.Duration == "" || c.IdealFor == "" {
		t.Errorf("Expected all comparison fields populated, got %+v", c)
	}

	req = httptest.NewRequest("GET", "/comparison/premium", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown tier, got %d", rr.Code)
	}
}

func TestPostRecommendation_Success(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"goal":           "definicion",
		"level":          "principiante",
		"days_per_week":  4,
		"training_place": "casa",
	})

	req := httptest.NewRequest("POST", "/quiz/recommendation", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var resp models.RecommendationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Plan.Slug != "definicion-casa-4d" {
		t.Errorf("Expected definicion-casa-4d, got %s", resp.Plan.Slug)
	}

	// The recommendation must be remembered.
	req = httptest.NewRequest("GET", "/selection", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var sel models.SelectionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &sel); err != nil {
		t.Fatalf("Failed to unmarshal selection: %v", err)
	}
	if !sel.Set || sel.PlanTitle != resp.Plan.Title {
		t.Errorf("Expected remembered plan %q, got %+v", resp.Plan.Title, sel)
	}
}

func TestPostRecommendation_Incomplete(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	body, _ := json.Marshal(map[string]interface{}{"goal": "volumen"})

	req := httptest.NewRequest("POST", "/quiz/recommendation", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestPostRecommendation_EmptyBody(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("POST", "/quiz/recommendation", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestPostLeadMessage_Generic(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("POST", "/lead-message", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var resp models.LeadMessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !bytes.Contains([]byte(resp.Message), []byte("Nombre:")) {
		t.Errorf("Expected generic template, got %q", resp.Message)
	}
	if !bytes.Contains([]byte(resp.WhatsAppURL), []byte("type=phone_number&app_absent=0")) {
		t.Errorf("Expected click-to-chat URL, got %s", resp.WhatsAppURL)
	}
}

func TestPutSelection(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	body, _ := json.Marshal(models.SelectionRequest{PlanTitle: "PROGRAMA BASE"})
	req := httptest.NewRequest("PUT", "/selection", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var sel models.SelectionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &sel); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if sel.PlanTitle != "PROGRAMA BASE" {
		t.Errorf("Expected 'PROGRAMA BASE', got %q", sel.PlanTitle)
	}
}

func TestPutSelection_MissingTitle(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("PUT", "/selection", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestGetContentSection_UnknownIs404(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	req := httptest.NewRequest("GET", "/content/testimonios", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestGetContentSection_KnownSectionDegradesGracefully(t *testing.T) {
	h := setupTestHandler(t)
	r := setupRouter(h)

	// No CMS configured: the section must still render, as zero values.
	req := httptest.NewRequest("GET", "/content/faqs", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}
