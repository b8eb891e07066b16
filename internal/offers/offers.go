// Package offers projects the internal catalog and CMS plan documents into
// the public Offer shape. Both derivation paths must produce structurally
// identical offers per tier so presentation code never cares about the source.
package offers

import (
	"strings"

	"coaching-offers-api/internal/catalog"
	"coaching-offers-api/internal/comparison"
	"coaching-offers-api/internal/lead"
	"coaching-offers-api/internal/models"
)

// checkoutURLs routes checkout-type offers to their external payment page.
// Only checkout-eligible tiers appear here.
var checkoutURLs = map[models.Tier]string{
	models.TierInicio: "https://mpago.la/pepu-inicio",
	models.TierBase:   "https://mpago.la/pepu-base",
}

// shortLabels is the compact tier label shown in the comparison header.
var shortLabels = map[models.Tier]string{
	models.TierInicio:         "Inicio",
	models.TierBase:           "Base",
	models.TierTransformacion: "Transformación",
	models.TierMentoria:       "Mentoría 1:1",
}

// detailSlugs is the fixed bijection between public short slugs and canonical
// offer slugs.
var detailSlugs = map[string]string{
	"inicio":         "programa-inicio",
	"base":           "programa-base",
	"transformacion": "programa-transformacion",
	"mentoria":       "mentoria-1-1",
}

// Projector derives offers from the catalog and from CMS plan documents.
type Projector struct {
	store *catalog.Store
}

// NewProjector creates a projector over a catalog store.
func NewProjector(store *catalog.Store) *Projector {
	return &Projector{store: store}
}

// Static derives one offer per programa, in catalog order. Pure function of
// the static catalog: calling it twice yields structurally equal results.
func (p *Projector) Static() []models.Offer {
	programas := p.store.Programas()
	out := make([]models.Offer, 0, len(programas))
	for _, prog := range programas {
		out = append(out, p.fromPrograma(prog))
	}
	return out
}

// FromCMS derives one offer per distinct tier found in the documents, keeping
// only the first document per tier and re-sorting into the fixed tier order.
// Blank document fields fall back to the static per-tier offer.
func (p *Projector) FromCMS(docs []models.PlanDoc) []models.Offer {
	firstByTier := make(map[models.Tier]models.PlanDoc, len(docs))
	for _, doc := range docs {
		if _, seen := firstByTier[doc.Tier]; !seen {
			firstByTier[doc.Tier] = doc
		}
	}

	out := make([]models.Offer, 0, len(firstByTier))
	for _, tier := range models.TierOrder {
		doc, ok := firstByTier[tier]
		if !ok {
			continue
		}
		prog, ok := p.store.ProgramaByTier(tier)
		if !ok {
			continue
		}
		out = append(out, overlay(p.fromPrograma(prog), doc))
	}
	return out
}

// fromPrograma is the static derivation for a single programa.
func (p *Projector) fromPrograma(prog models.Programa) models.Offer {
	badge := ""
	if len(prog.Badges) > 0 {
		badge = prog.Badges[0]
	}

	return models.Offer{
		Slug:            prog.Slug,
		Title:           prog.Title,
		ShortLabel:      shortLabels[prog.Tier],
		Strapline:       prog.Subtitle,
		Pitch:           derivePitch(prog.DescriptionLong),
		DescriptionLong: prog.DescriptionLong,
		Benefits:        prog.Includes,
		IdealFor:        prog.IdealFor,
		ResultExpected:  prog.ResultExpected,
		Limits:          prog.Limits,
		ConversionFlow:  prog.ConversionFlow,
		DurationLabel:   comparison.Value(comparison.LabelDuration, prog.Tier),
		PriceARS:        prog.Pricing.ARS,
		PriceUSD:        prog.Pricing.USD,
		PricingNote:     prog.Pricing.Note,
		CTALabel:        prog.CTALabel,
		CTAType:         ctaTypeFor(prog.Tier),
		Theme:           prog.Tier,
		Comparison:      comparison.ByTier(prog.Tier),
		BadgeLabel:      badge,
		Featured:        prog.Tier == models.TierBase,
	}
}

// overlay applies non-blank CMS document fields over the static baseline.
func overlay(base models.Offer, doc models.PlanDoc) models.Offer {
	if doc.Title != "" {
		base.Title = doc.Title
	}
	if doc.Subtitle != "" {
		base.Strapline = doc.Subtitle
	}
	if doc.Description != "" {
		base.DescriptionLong = doc.Description
		base.Pitch = derivePitch(doc.Description)
	}
	if len(doc.Benefits) > 0 {
		base.Benefits = doc.Benefits
	}
	if len(doc.IdealFor) > 0 {
		base.IdealFor = doc.IdealFor
	}
	if doc.DurationLabel != "" {
		base.DurationLabel = doc.DurationLabel
	}
	if doc.PriceARS != "" {
		base.PriceARS = doc.PriceARS
	}
	if doc.PriceUSD != "" {
		base.PriceUSD = doc.PriceUSD
	}
	if doc.PricingNote != "" {
		base.PricingNote = doc.PricingNote
	}
	if doc.CTALabel != "" {
		base.CTALabel = doc.CTALabel
	}
	if doc.Badge != "" {
		base.BadgeLabel = doc.Badge
	}
	if doc.CoverImage != "" {
		base.CoverImage = doc.CoverImage
	}
	if doc.Featured {
		base.Featured = true
	}
	return base
}

// derivePitch takes the first three non-empty lines of the long description
// and joins them with spaces. Purely textual, not a summarizer.
func derivePitch(description string) string {
	var kept []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == 3 {
			break
		}
	}
	return strings.Join(kept, " ")
}

// ctaTypeFor implements the CTA typing rule: inicio and base check out,
// transformacion and mentoria open a WhatsApp lead.
func ctaTypeFor(tier models.Tier) models.CTAType {
	if _, ok := checkoutURLs[tier]; ok {
		return models.CTACheckout
	}
	return models.CTALead
}

// PrimaryHref returns the destination of an offer's primary call to action:
// the tier's external checkout URL, or a WhatsApp deep link seeded with the
// offer title.
func PrimaryHref(offer models.Offer) string {
	if offer.CTAType == models.CTACheckout {
		return checkoutURLs[offer.Theme]
	}
	return lead.WhatsAppURL(lead.BuildMessage(models.LeadPayload{PlanTitle: offer.Title}))
}

// DetailSlugToOfferSlug maps a public short slug to the canonical offer slug.
func DetailSlugToOfferSlug(short string) (string, bool) {
	slug, ok := detailSlugs[short]
	return slug, ok
}

// OfferSlugToDetailSlug maps a canonical offer slug back to its short slug.
func OfferSlugToDetailSlug(offerSlug string) (string, bool) {
	for short, slug := range detailSlugs {
		if slug == offerSlug {
			return short, true
		}
	}
	return "", false
}

// ByDetailSlug resolves a short slug against the given offer list. Unknown
// slugs yield not-found so callers can render a 404 state.
func ByDetailSlug(offerList []models.Offer, short string) (models.Offer, bool) {
	slug, ok := detailSlugs[short]
	if !ok {
		return models.Offer{}, false
	}
	for _, o := range offerList {
		if o.Slug == slug {
			return o, true
		}
	}
	return models.Offer{}, false
}
