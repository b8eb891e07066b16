// Package comparison answers "what is the value of row R for tier T" over the
// fixed program comparison table.
package comparison

import "coaching-offers-api/internal/models"

// Row label constants. ByTier pulls exactly these six rows; adding a
// dimension means adding both a row and an OfferComparison field.
const (
	LabelDuration        = "Duración"
	LabelPersonalization = "Personalización"
	LabelNutrition       = "Plan de nutrición"
	LabelFollowUp        = "Seguimiento"
	LabelWhatsAppSupport = "Soporte por WhatsApp"
	LabelIdealFor        = "Ideal para"
)

// Row is one comparison dimension with a value per tier.
type Row struct {
	Label  string                 `json:"label"`
	Values map[models.Tier]string `json:"values"`
}

// table is the fixed ordered comparison table. Every row has all four tier
// cells populated.
var table = []Row{
	{
		Label: LabelDuration,
		Values: map[models.Tier]string{
			models.TierInicio:         "1 mes",
			models.TierBase:           "Mensual renovable",
			models.TierTransformacion: "12 semanas",
			models.TierMentoria:       "Mensual, mínimo 3 meses",
		},
	},
	{
		Label: LabelPersonalization,
		Values: map[models.Tier]string{
			models.TierInicio:         "Por nivel y material",
			models.TierBase:           "Plan 100% personalizado",
			models.TierTransformacion: "Entrenamiento + nutrición a medida",
			models.TierMentoria:       "Todo a medida, semana a semana",
		},
	},
	{
		Label: LabelNutrition,
		Values: map[models.Tier]string{
			models.TierInicio:         "Guía general",
			models.TierBase:           "Pautas de alimentación",
			models.TierTransformacion: "Plan de nutrición completo",
			models.TierMentoria:       "Plan completo con ajustes semanales",
		},
	},
	{
		Label: LabelFollowUp,
		Values: map[models.Tier]string{
			models.TierInicio:         "Sin seguimiento",
			models.TierBase:           "Revisión mensual",
			models.TierTransformacion: "Check-in quincenal",
			models.TierMentoria:       "Contacto diario",
		},
	},
	{
		Label: LabelWhatsAppSupport,
		Values: map[models.Tier]string{
			models.TierInicio:         "Solo comunidad",
			models.TierBase:           "Horario hábil",
			models.TierTransformacion: "Prioritario",
			models.TierMentoria:       "Directo conmigo, todos los días",
		},
	},
	{
		Label: LabelIdealFor,
		Values: map[models.Tier]string{
			models.TierInicio:         "Probar el método",
			models.TierBase:           "Progresar todo el año",
			models.TierTransformacion: "Un cambio visible en 3 meses",
			models.TierMentoria:       "El camino más corto posible",
		},
	},
}

// Rows returns the full ordered comparison table.
func Rows() []Row {
	return table
}

// Value returns the cell for the given row label and tier. Unknown labels
// degrade to an empty string rather than an error, so display code can render
// a blank cell.
func Value(label string, tier models.Tier) string {
	for _, row := range table {
		if row.Label == label {
			return row.Values[tier]
		}
	}
	return ""
}

// ByTier assembles the structured comparison record of a tier from the six
// fixed rows.
func ByTier(tier models.Tier) models.OfferComparison {
	return models.OfferComparison{
		Duration:        Value(LabelDuration, tier),
		Personalization: Value(LabelPersonalization, tier),
		Nutrition:       Value(LabelNutrition, tier),
		FollowUp:        Value(LabelFollowUp, tier),
		WhatsAppSupport: Value(LabelWhatsAppSupport, tier),
		IdealFor:        Value(LabelIdealFor, tier),
	}
}
