package models

// Goal is the training objective a prospect selects in the quiz.
type Goal string

const (
	GoalDefinicion  Goal = "definicion"
	GoalVolumen     Goal = "volumen"
	GoalRendimiento Goal = "rendimiento"
)

// Level is the self-reported training experience.
type Level string

const (
	LevelPrincipiante Level = "principiante"
	LevelIntermedio   Level = "intermedio"
	LevelAvanzado     Level = "avanzado"
)

// TrainingPlace is where the prospect trains.
type TrainingPlace string

const (
	PlaceGym  TrainingPlace = "gym"
	PlaceCasa TrainingPlace = "casa"
)

// Tier is one of the four fixed coaching-program levels. It is the stable
// join key across Programa, Offer and CMS plan documents.
type Tier string

const (
	TierInicio         Tier = "inicio"
	TierBase           Tier = "base"
	TierTransformacion Tier = "transformacion"
	TierMentoria       Tier = "mentoria"
)

// TierOrder is the fixed display order for tiers.
var TierOrder = []Tier{TierInicio, TierBase, TierTransformacion, TierMentoria}

// FAQ is a question/answer pair attached to a plan.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Plan is a quiz-recommendable catalog entry, keyed by goal/level/days/place.
type Plan struct {
	Slug            string        `json:"slug"`
	Title           string        `json:"title"`
	Tagline         string        `json:"tagline"`
	Description     string        `json:"description"`
	Goal            Goal          `json:"goal"`
	Level           Level         `json:"level"`
	DaysPerWeek     int           `json:"days_per_week"` // 3, 4 or 5
	TrainingPlace   TrainingPlace `json:"training_place"`
	Includes        []string      `json:"includes"`
	ForWho          []string      `json:"for_who"`
	NotFor          []string      `json:"not_for"`
	FAQs            []FAQ         `json:"faqs"`
	PriceLabel      string        `json:"price_label"`
	WhatsAppMessage string        `json:"whatsapp_message"`
	Featured        bool          `json:"featured"`
}

// Pricing holds the optional price points of a Programa.
type Pricing struct {
	ARS  string `json:"ars,omitempty"`
	USD  string `json:"usd,omitempty"`
	Note string `json:"note,omitempty"`
}

// Programa is a pricing-tier catalog entry, coarser than Plan. Exactly one
// Programa exists per tier.
type Programa struct {
	Slug            string   `json:"slug"`
	Tier            Tier     `json:"tier"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	DescriptionLong string   `json:"description_long"`
	Includes        []string `json:"includes"`
	IdealFor        []string `json:"ideal_for"`
	ResultExpected  string   `json:"result_expected,omitempty"`
	Limits          string   `json:"limits,omitempty"`
	ConversionFlow  string   `json:"conversion_flow,omitempty"`
	CTALabel        string   `json:"cta_label"`
	Pricing         Pricing  `json:"pricing"`
	Badges          []string `json:"badges,omitempty"`
}

// CTAType selects the primary call-to-action of an offer.
type CTAType string

const (
	CTACheckout CTAType = "checkout"
	CTALead     CTAType = "lead"
)

// OfferComparison is the per-tier comparison record embedded in an Offer.
type OfferComparison struct {
	Duration        string `json:"duration"`
	Personalization string `json:"personalization"`
	Nutrition       string `json:"nutrition"`
	FollowUp        string `json:"follow_up"`
	WhatsAppSupport string `json:"whatsapp_support"`
	IdealFor        string `json:"ideal_for"`
}

// Offer is the public-facing projection consumed by presentation code. Both
// the static and the CMS derivation must produce the same shape per tier.
type Offer struct {
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	ShortLabel      string          `json:"short_label"`
	Strapline       string          `json:"strapline"`
	Pitch           string          `json:"pitch"`
	DescriptionLong string          `json:"description_long"`
	Benefits        []string        `json:"benefits"`
	IdealFor        []string        `json:"ideal_for"`
	ResultExpected  string          `json:"result_expected,omitempty"`
	Limits          string          `json:"limits,omitempty"`
	ConversionFlow  string          `json:"conversion_flow,omitempty"`
	DurationLabel   string          `json:"duration_label"`
	PriceARS        string          `json:"price_ars,omitempty"`
	PriceUSD        string          `json:"price_usd,omitempty"`
	PricingNote     string          `json:"pricing_note,omitempty"`
	CTALabel        string          `json:"cta_label"`
	CTAType         CTAType         `json:"cta_type"`
	Theme           Tier            `json:"theme"`
	Comparison      OfferComparison `json:"comparison"`
	BadgeLabel      string          `json:"badge_label,omitempty"`
	CoverImage      string          `json:"cover_image,omitempty"`
	Featured        bool            `json:"featured"`
}

// QuizAnswers collects the four quiz fields. Pointer fields distinguish
// "not answered yet" from a zero value.
type QuizAnswers struct {
	Goal          *Goal          `json:"goal,omitempty"`
	Level         *Level         `json:"level,omitempty"`
	DaysPerWeek   *int           `json:"days_per_week,omitempty"`
	TrainingPlace *TrainingPlace `json:"training_place,omitempty"`
}

// QuizRule maps a partial answer predicate to a target plan slug. Fields
// left nil in When are wildcards.
type QuizRule struct {
	ID       string
	When     QuizAnswers
	PlanSlug string
}

// LeadPayload carries the optional fields a prospect filled before jumping
// to WhatsApp. Absent fields render as blank, never as a null literal.
type LeadPayload struct {
	PlanTitle  string `json:"plan_title,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Objective  string `json:"objective,omitempty"`
	Days       string `json:"days,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// LeadMessageResponse is the response for POST /lead-message.
type LeadMessageResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// RecommendationResponse is the response for POST /quiz/recommendation.
type RecommendationResponse struct {
	Plan Plan `json:"plan"`
}

// SelectionRequest carries the remembered plan title.
type SelectionRequest struct {
	PlanTitle string `json:"plan_title"`
}

// SelectionResponse is the remembered plan, if any.
type SelectionResponse struct {
	PlanTitle string `json:"plan_title"`
	Set       bool   `json:"set"`
}

// OfferLinkResponse is the response for GET /offers/{slug}/link.
type OfferLinkResponse struct {
	Slug    string  `json:"slug"`
	CTAType CTAType `json:"cta_type"`
	Href    string  `json:"href"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
