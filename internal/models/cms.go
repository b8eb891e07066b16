package models

// CMS document shapes. The content gateway returns these as plain values;
// any optional field may be absent and the core must tolerate it.

// SiteSettingsDoc is the global site configuration document.
type SiteSettingsDoc struct {
	SiteTitle    string `json:"site_title,omitempty"`
	Headline     string `json:"headline,omitempty"`
	Subheadline  string `json:"subheadline,omitempty"`
	HeroImage    string `json:"hero_image,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	YouTubeURL   string `json:"youtube_url,omitempty"`
}

// AboutDoc is the coach bio document.
type AboutDoc struct {
	Title     string   `json:"title,omitempty"`
	Body      string   `json:"body,omitempty"`
	Photo     string   `json:"photo,omitempty"`
	Accolades []string `json:"accolades,omitempty"`
}

// PlanDoc is a CMS-authored program document keyed by tier. Blank fields fall
// back to the static per-tier defaults during projection.
type PlanDoc struct {
	Tier          Tier     `json:"tier"`
	Title         string   `json:"title,omitempty"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Description   string   `json:"description,omitempty"`
	Benefits      []string `json:"benefits,omitempty"`
	IdealFor      []string `json:"ideal_for,omitempty"`
	DurationLabel string   `json:"duration_label,omitempty"`
	PriceARS      string   `json:"price_ars,omitempty"`
	PriceUSD      string   `json:"price_usd,omitempty"`
	PricingNote   string   `json:"pricing_note,omitempty"`
	CTALabel      string   `json:"cta_label,omitempty"`
	Badge         string   `json:"badge,omitempty"`
	CoverImage    string   `json:"cover_image,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
}

// ResultDoc is a client transformation testimonial.
type ResultDoc struct {
	Name        string `json:"name,omitempty"`
	Quote       string `json:"quote,omitempty"`
	BeforeImage string `json:"before_image,omitempty"`
	AfterImage  string `json:"after_image,omitempty"`
	ProgramTier Tier   `json:"program_tier,omitempty"`
}

// FAQDoc is a site-wide frequently asked question.
type FAQDoc struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order,omitempty"`
}

// FooterDoc is the footer content document.
type FooterDoc struct {
	Tagline   string   `json:"tagline,omitempty"`
	LegalNote string   `json:"legal_note,omitempty"`
	Links     []string `json:"links,omitempty"`
}
