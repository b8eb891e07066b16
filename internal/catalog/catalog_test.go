package catalog

import (
	"testing"

	"coaching-offers-api/internal/models"
)

func TestNewStore_ValidData(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	if len(s.Plans()) == 0 {
		t.Fatal("Expected at least one plan")
	}
	if len(s.Programas()) != len(models.TierOrder) {
		t.Fatalf("Expected %d programas, got %d", len(models.TierOrder), len(s.Programas()))
	}
}

func TestNewStore_NoDuplicateProgramaSlugs(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	seen := make(map[string]bool)
	for _, p := range s.Programas() {
		if seen[p.Slug] {
			t.Errorf("Duplicate programa slug: %s", p.Slug)
		}
		seen[p.Slug] = true
	}
}

func TestNewStore_ExactlyOneProgramaPerTier(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	count := make(map[models.Tier]int)
	for _, p := range s.Programas() {
		count[p.Tier]++
	}

	for _, tier := range models.TierOrder {
		if count[tier] != 1 {
			t.Errorf("Expected exactly 1 programa for tier %s, got %d", tier, count[tier])
		}
	}
}

func TestNewStore_DuplicateProgramaSlugFails(t *testing.T) {
	dup := []models.Programa{
		{Slug: "programa-inicio", Tier: models.TierInicio},
		{Slug: "programa-inicio", Tier: models.TierBase},
	}

	if _, err := newStore(nil, dup, nil); err == nil {
		t.Fatal("Expected error for duplicate programa slug, got nil")
	}
}

func TestNewStore_DuplicatePlanSlugFails(t *testing.T) {
	dup := []models.Plan{
		{Slug: "recomp-3d-base"},
		{Slug: "recomp-3d-base"},
	}

	if _, err := newStore(dup, nil, nil); err == nil {
		t.Fatal("Expected error for duplicate plan slug, got nil")
	}
}

func TestNewStore_MissingTierFails(t *testing.T) {
	incomplete := []models.Programa{
		{Slug: "programa-inicio", Tier: models.TierInicio},
	}

	if _, err := newStore(nil, incomplete, nil); err == nil {
		t.Fatal("Expected error for missing tiers, got nil")
	}
}

func TestPlanBySlug(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	plan, ok := s.PlanBySlug("definicion-casa-4d")
	if !ok {
		t.Fatal("Expected to find plan definicion-casa-4d")
	}
	if plan.Goal != models.GoalDefinicion {
		t.Errorf("Expected goal definicion, got %s", plan.Goal)
	}
	if plan.TrainingPlace != models.PlaceCasa {
		t.Errorf("Expected training place casa, got %s", plan.TrainingPlace)
	}

	if _, ok := s.PlanBySlug("no-such-plan"); ok {
		t.Error("Expected miss for unknown plan slug")
	}
}

func TestProgramaLookups(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	p, ok := s.ProgramaBySlug("mentoria-1-1")
	if !ok {
		t.Fatal("Expected to find programa mentoria-1-1")
	}
	if p.Tier != models.TierMentoria {
		t.Errorf("Expected tier mentoria, got %s", p.Tier)
	}

	byTier, ok := s.ProgramaByTier(models.TierMentoria)
	if !ok {
		t.Fatal("Expected to find programa for tier mentoria")
	}
	if byTier.Slug != p.Slug {
		t.Errorf("Tier lookup returned %s, slug lookup returned %s", byTier.Slug, p.Slug)
	}

	if _, ok := s.ProgramaBySlug("ghost"); ok {
		t.Error("Expected miss for unknown programa slug")
	}
}

func TestStore_PreservesInsertionOrder(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	wantTiers := models.TierOrder
	got := s.Programas()
	for i, tier := range wantTiers {
		if got[i].Tier != tier {
			t.Errorf("Position %d: expected tier %s, got %s", i, tier, got[i].Tier)
		}
	}
}

func TestRules_TargetsResolve(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}

	for _, rule := range s.Rules() {
		if _, ok := s.PlanBySlug(rule.PlanSlug); !ok {
			t.Errorf("Rule %s targets unknown plan slug %s", rule.ID, rule.PlanSlug)
		}
	}
}
