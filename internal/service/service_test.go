package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coaching-offers-api/internal/cache"
	"coaching-offers-api/internal/catalog"
	"coaching-offers-api/internal/cms"
	"coaching-offers-api/internal/events"
	"coaching-offers-api/internal/features"
	"coaching-offers-api/internal/models"
	"coaching-offers-api/internal/state"
	"coaching-offers-api/internal/validation"
)

func newTestService(t *testing.T, cmsBaseURL string) *Service {
	store, err := catalog.NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	gateway := cms.NewGateway(cms.Config{BaseURL: cmsBaseURL, FreshnessTTL: time.Minute}, cache.NewInMemoryCache())
	ev := events.NewManager(true)

	flags := features.NewManager()
	flags.Register(features.FeatureCMSContent, true, "serve CMS-backed offers when available")

	svc, err := NewService(store, gateway, state.NewMemoryStore(ev), ev, flags)
	if err != nil {
		t.Fatalf("Failed to build service: %v", err)
	}
	return svc
}

func TestOffers_StaticWithoutCMS(t *testing.T) {
	svc := newTestService(t, "")

	got := svc.Offers(context.Background())
	if len(got) != 4 {
		t.Fatalf("Expected 4 static offers, got %d", len(got))
	}
	if got[0].Theme != models.TierInicio {
		t.Errorf("Expected inicio first, got %s", got[0].Theme)
	}
}

func TestOffers_CMSDocsDriveProjection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/content/plans" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode([]models.PlanDoc{
			{Tier: models.TierBase, Title: "BASE DESDE CMS"},
		})
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	got := svc.Offers(context.Background())
	if len(got) != 1 {
		t.Fatalf("Expected 1 CMS-backed offer, got %d", len(got))
	}
	if got[0].Title != "BASE DESDE CMS" {
		t.Errorf("Expected CMS title, got %q", got[0].Title)
	}
}

func TestOffers_CMSFailureFallsBackToStatic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	got := svc.Offers(context.Background())
	if len(got) != 4 {
		t.Fatalf("Expected static fallback of 4 offers, got %d", len(got))
	}
}

func TestRecommend_CompleteAnswers(t *testing.T) {
	svc := newTestService(t, "")

	g := models.GoalDefinicion
	l := models.LevelPrincipiante
	d := 4
	p := models.PlaceCasa
	answers := models.QuizAnswers{Goal: &g, Level: &l, DaysPerWeek: &d, TrainingPlace: &p}

	plan, err := svc.Recommend(context.Background(), answers)
	if err != nil {
		t.Fatalf("Failed to recommend: %v", err)
	}
	if plan.Slug != "definicion-casa-4d" {
		t.Errorf("Expected definicion-casa-4d, got %s", plan.Slug)
	}

	// The recommendation is remembered for cross-page continuity.
	sel := svc.Selection(context.Background())
	if !sel.Set || sel.PlanTitle != plan.Title {
		t.Errorf("Expected remembered plan %q, got %+v", plan.Title, sel)
	}
}

func TestRecommend_IncompleteAnswersRejected(t *testing.T) {
	svc := newTestService(t, "")

	g := models.GoalVolumen
	_, err := svc.Recommend(context.Background(), models.QuizAnswers{Goal: &g})
	if err == nil {
		t.Fatal("Expected error for incomplete answers")
	}

	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a validation error, got %T: %v", err, err)
	}
	if verr.Field != "answers" {
		t.Errorf("Expected field 'answers', got %q", verr.Field)
	}
}

func TestRecommend_MalformedEnumRejected(t *testing.T) {
	svc := newTestService(t, "")

	g := models.Goal("tonificar")
	l := models.LevelIntermedio
	d := 3
	p := models.PlaceGym
	answers := models.QuizAnswers{Goal: &g, Level: &l, DaysPerWeek: &d, TrainingPlace: &p}

	if _, err := svc.Recommend(context.Background(), answers); err == nil {
		t.Error("Expected error for malformed goal value")
	}
}

func TestBuildLeadMessage(t *testing.T) {
	svc := newTestService(t, "")

	resp, err := svc.BuildLeadMessage(context.Background(), models.LeadPayload{PlanTitle: "PROGRAMA BASE"})
	if err != nil {
		t.Fatalf("Failed to build lead message: %v", err)
	}

	wantFirstLine := "Hola Pepu, estoy interesado en el plan: PROGRAMA BASE"
	if got := resp.Message[:len(wantFirstLine)]; got != wantFirstLine {
		t.Errorf("Unexpected first line %q", got)
	}
	if resp.WhatsAppURL == "" {
		t.Error("Expected a WhatsApp URL")
	}
}

func TestOfferLink(t *testing.T) {
	svc := newTestService(t, "")
	ctx := context.Background()

	link, ok := svc.OfferLink(ctx, "inicio")
	if !ok {
		t.Fatal("Expected link for short slug inicio")
	}
	if link.CTAType != models.CTACheckout {
		t.Errorf("Expected checkout link for inicio, got %s", link.CTAType)
	}

	if _, ok := svc.OfferLink(ctx, "elite"); ok {
		t.Error("Expected miss for unknown short slug")
	}
}

func TestSetSelection_Overwrites(t *testing.T) {
	svc := newTestService(t, "")
	ctx := context.Background()

	svc.SetSelection(ctx, "PROGRAMA BASE")
	svc.SetSelection(ctx, "  MENTORÍA 1:1  ")

	sel := svc.Selection(ctx)
	if sel.PlanTitle != "MENTORÍA 1:1" {
		t.Errorf("Expected sanitized last write, got %q", sel.PlanTitle)
	}
}
