// Package cms fetches typed content documents from the headless CMS. A
// failed, slow or malformed fetch degrades to zero values so page rendering
// never crashes on upstream content problems.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"coaching-offers-api/internal/cache"
	"coaching-offers-api/internal/models"
)

// Config holds the gateway settings. FreshnessTTL is the cache window for
// fetched documents, typically tens of seconds. CacheDocs is consulted on
// every fetch so the document cache can be toggled at runtime; nil means
// always cache.
type Config struct {
	BaseURL      string
	FreshnessTTL time.Duration
	Timeout      time.Duration
	CacheDocs    func() bool
}

// Gateway is the CMS content client. When BaseURL is empty the gateway is
// disabled and every method returns its zero value.
type Gateway struct {
	cfg    Config
	client *http.Client
	cache  cache.Cache
}

// NewGateway creates a gateway with the given cache behind it.
func NewGateway(cfg Config, c cache.Cache) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		cache:  c,
	}
}

// Enabled reports whether a CMS endpoint is configured.
func (g *Gateway) Enabled() bool {
	return g.cfg.BaseURL != ""
}

// SiteSettings returns the global site settings document.
func (g *Gateway) SiteSettings(ctx context.Context) models.SiteSettingsDoc {
	var doc models.SiteSettingsDoc
	g.fetch(ctx, "site-settings", &doc)
	return doc
}

// About returns the coach bio document.
func (g *Gateway) About(ctx context.Context) models.AboutDoc {
	var doc models.AboutDoc
	g.fetch(ctx, "about", &doc)
	return doc
}

// Plans returns the CMS plan documents. An empty slice means the static
// catalog projection should be used instead.
func (g *Gateway) Plans(ctx context.Context) []models.PlanDoc {
	var docs []models.PlanDoc
	g.fetch(ctx, "plans", &docs)
	return docs
}

// Results returns the transformation testimonials.
func (g *Gateway) Results(ctx context.Context) []models.ResultDoc {
	var docs []models.ResultDoc
	g.fetch(ctx, "results", &docs)
	return docs
}

// FAQs returns the site-wide FAQ documents.
func (g *Gateway) FAQs(ctx context.Context) []models.FAQDoc {
	var docs []models.FAQDoc
	g.fetch(ctx, "faqs", &docs)
	return docs
}

// Footer returns the footer content document.
func (g *Gateway) Footer(ctx context.Context) models.FooterDoc {
	var doc models.FooterDoc
	g.fetch(ctx, "footer", &doc)
	return doc
}

// Section resolves a document type by its public name, for the raw content
// passthrough endpoint.
func (g *Gateway) Section(ctx context.Context, name string) (interface{}, bool) {
	switch name {
	case "site-settings":
		return g.SiteSettings(ctx), true
	case "about":
		return g.About(ctx), true
	case "plans":
		return g.Plans(ctx), true
	case "results":
		return g.Results(ctx), true
	case "faqs":
		return g.FAQs(ctx), true
	case "footer":
		return g.Footer(ctx), true
	default:
		return nil, false
	}
}

// fetch loads one document type, preferring the cache within the freshness
// window. Any failure leaves dest untouched and logs a warning.
func (g *Gateway) fetch(ctx context.Context, docType string, dest interface{}) {
	if !g.Enabled() {
		return
	}

	cacheDocs := g.cfg.CacheDocs == nil || g.cfg.CacheDocs()

	key := "cms:" + docType
	if cacheDocs {
		if err := cache.GetJSON(ctx, g.cache, key, dest); err == nil {
			return
		}
	}

	if err := g.fetchRemote(ctx, docType, dest); err != nil {
		log.Printf("cms: fetch %s failed, serving defaults: %v", docType, err)
		return
	}

	if !cacheDocs {
		return
	}
	if err := cache.SetJSON(ctx, g.cache, key, dest, g.cfg.FreshnessTTL); err != nil {
		log.Printf("cms: cache write for %s failed: %v", docType, err)
	}
}

func (g *Gateway) fetchRemote(ctx context.Context, docType string, dest interface{}) error {
	url := g.cfg.BaseURL + "/content/" + docType

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("malformed document: %w", err)
	}
	return nil
}
