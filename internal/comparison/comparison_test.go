package comparison

import (
	"testing"

	"coaching-offers-api/internal/models"
)

func TestValue_KnownCells(t *testing.T) {
	if got := Value(LabelDuration, models.TierTransformacion); got != "12 semanas" {
		t.Errorf("Expected '12 semanas', got %q", got)
	}
	if got := Value(LabelFollowUp, models.TierMentoria); got != "Contacto diario" {
		t.Errorf("Expected 'Contacto diario', got %q", got)
	}
}

func TestValue_UnknownLabelReturnsEmpty(t *testing.T) {
	if got := Value("Equipamiento", models.TierBase); got != "" {
		t.Errorf("Expected empty string for unknown label, got %q", got)
	}
}

func TestEveryCellPopulated(t *testing.T) {
	for _, row := range Rows() {
		for _, tier := range models.TierOrder {
			if row.Values[tier] == "" {
				t.Errorf("Row %q has no value for tier %s", row.Label, tier)
			}
		}
	}
}

func TestByTier_MatchesValueLookups(t *testing.T) {
	for _, tier := range models.TierOrder {
		c := ByTier(tier)

		checks := []struct {
			label string
			got   string
		}{
			{LabelDuration, c.Duration},
			{LabelPersonalization, c.Personalization},
			{LabelNutrition, c.Nutrition},
			{LabelFollowUp, c.FollowUp},
			{LabelWhatsAppSupport, c.WhatsAppSupport},
			{LabelIdealFor, c.IdealFor},
		}

		for _, check := range checks {
			if want := Value(check.label, tier); check.got != want {
				t.Errorf("Tier %s, row %q: ByTier returned %q, Value returned %q",
					tier, check.label, check.got, want)
			}
		}
	}
}

// Guards the convention that every table row maps to an OfferComparison field
// and vice versa.
func TestRowFieldCoupling(t *testing.T) {
	knownLabels := map[string]bool{
		LabelDuration:        true,
		LabelPersonalization: true,
		LabelNutrition:       true,
		LabelFollowUp:        true,
		LabelWhatsAppSupport: true,
		LabelIdealFor:        true,
	}

	if len(Rows()) != len(knownLabels) {
		t.Fatalf("Table has %d rows but ByTier maps %d labels", len(Rows()), len(knownLabels))
	}

	for _, row := range Rows() {
		if !knownLabels[row.Label] {
			t.Errorf("Table row %q has no corresponding OfferComparison field", row.Label)
		}
	}
}
