package validation

import (
	"fmt"
	"strings"
	"unicode"

	"coaching-offers-api/internal/models"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidateQuizAnswers checks that every answered field carries a legal value
// and that the answer set is complete enough to recommend on. Completeness
// itself is the caller's gate; this rejects malformed enum values.
func ValidateQuizAnswers(a models.QuizAnswers) error {
	if a.Goal != nil {
		switch *a.Goal {
		case models.GoalDefinicion, models.GoalVolumen, models.GoalRendimiento:
		default:
			return &ValidationError{Field: "goal", Message: fmt.Sprintf("unknown value %q", *a.Goal)}
		}
	}

	if a.Level != nil {
		switch *a.Level {
		case models.LevelPrincipiante, models.LevelIntermedio, models.LevelAvanzado:
		default:
			return &ValidationError{Field: "level", Message: fmt.Sprintf("unknown value %q", *a.Level)}
		}
	}

	if a.DaysPerWeek != nil {
		switch *a.DaysPerWeek {
		case 3, 4, 5:
		default:
			return &ValidationError{Field: "days_per_week", Message: "must be 3, 4 or 5"}
		}
	}

	if a.TrainingPlace != nil {
		switch *a.TrainingPlace {
		case models.PlaceGym, models.PlaceCasa:
		default:
			return &ValidationError{Field: "training_place", Message: fmt.Sprintf("unknown value %q", *a.TrainingPlace)}
		}
	}

	return nil
}

// ValidateTier checks a tier string against the closed set.
func ValidateTier(tier string) (models.Tier, error) {
	switch models.Tier(tier) {
	case models.TierInicio, models.TierBase, models.TierTransformacion, models.TierMentoria:
		return models.Tier(tier), nil
	}
	return "", &ValidationError{Field: "tier", Message: fmt.Sprintf("unknown tier %q", tier)}
}

const maxLeadFieldLen = 200

// SanitizeLeadPayload strips control characters and trims every field. Lead
// text ends up inside a WhatsApp URL, so oversized fields are rejected rather
// than truncated silently.
func SanitizeLeadPayload(p models.LeadPayload) (models.LeadPayload, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"plan_title", &p.PlanTitle},
		{"first_name", &p.FirstName},
		{"last_name", &p.LastName},
		{"objective", &p.Objective},
		{"days", &p.Days},
		{"experience", &p.Experience},
	}

	for _, f := range fields {
		*f.value = SanitizeString(*f.value)
		if len(*f.value) > maxLeadFieldLen {
			return models.LeadPayload{}, &ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("cannot exceed %d characters", maxLeadFieldLen),
			}
		}
	}

	return p, nil
}

// SanitizeString drops control characters (keeping line breaks and tabs) and
// trims surrounding whitespace.
func SanitizeString(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}
