package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"seogap-go/pkg/logger"
)

// PageAudit holds the structured data found on one audited page.
type PageAudit struct {
	URL     string            `json:"url"`
	Schemas []json.RawMessage `json:"schemas"`
	Error   string            `json:"error,omitempty"`
}

// Analyzer extracts JSON-LD structured data from a site's key pages.
type Analyzer struct {
	http *resty.Client
	log  *logger.Logger
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		http: resty.New().
			SetTimeout(15 * time.Second).
			SetHeader("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"),
		log: logger.GetLogger().WithField("component", "geo_analyzer"),
	}
}

// ExtractJSONLD parses every application/ld+json script block in the
// document. Blocks that are not valid JSON are skipped.
func ExtractJSONLD(doc *goquery.Document) []json.RawMessage {
	schemas := []json.RawMessage{}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}
		if !json.Valid([]byte(raw)) {
			return
		}
		schemas = append(schemas, json.RawMessage(raw))
	})

	return schemas
}

// AuditPages fetches each named page and extracts its JSON-LD schemas.
// Fetch failures are recorded on the audit entry, not returned as errors,
// so one unreachable page does not abort the run.
func (a *Analyzer) AuditPages(ctx context.Context, pages map[string]string) map[string]PageAudit {
	results := make(map[string]PageAudit, len(pages))

	for pageType, pageURL := range pages {
		audit := PageAudit{URL: pageURL, Schemas: []json.RawMessage{}}

		doc, err := a.fetch(ctx, pageURL)
		if err != nil {
			a.log.WithField("url", pageURL).WithError(err).Warn("Page audit fetch failed")
			audit.Error = err.Error()
			results[pageType] = audit
			continue
		}

		audit.Schemas = ExtractJSONLD(doc)
		a.log.WithFields(map[string]interface{}{
			"page":    pageType,
			"schemas": len(audit.Schemas),
		}).Info("Page audited")
		results[pageType] = audit
	}

	return results
}

func (a *Analyzer) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	resp, err := a.http.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode())
	}
	return goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
}
