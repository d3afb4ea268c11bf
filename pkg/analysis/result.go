package analysis

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seogap-go/pkg/gap"
	"seogap-go/pkg/geo"
	"seogap-go/pkg/pagespeed"
	"seogap-go/pkg/seoapi"
	"seogap-go/pkg/sitemap"
	"seogap-go/pkg/social"
)

// Metadata describes one analysis run.
type Metadata struct {
	TargetDomain   string            `json:"target_domain"`
	CompanyName    string            `json:"company_name"`
	Competitors    map[string]string `json:"competitors"`
	Location       string            `json:"location"`
	Language       string            `json:"language"`
	CollectionDate time.Time         `json:"collection_date"`
	TotalCost      float64           `json:"total_cost"`
}

// SiteSignals holds the scraped on-site evidence for the target domain.
type SiteSignals struct {
	SitemapURL     string                    `json:"sitemap_url,omitempty"`
	Sitemap        *sitemap.Analysis         `json:"sitemap_analysis,omitempty"`
	SocialProfiles map[string]social.Profile `json:"social_profiles,omitempty"`
	LocalIntl      *social.Signals           `json:"local_international,omitempty"`
}

// Result is the accumulator for a full analysis run. Phases return a new
// Result value with their section filled in; earlier sections are never
// mutated in place.
type Result struct {
	Metadata       Metadata                              `json:"metadata"`
	Site           SiteSignals                           `json:"site"`
	DomainMetrics  map[string]*seoapi.DomainOverview     `json:"domain_metrics"`
	RankedKeywords map[string][]seoapi.RankedKeywordItem `json:"ranked_keywords"`
	Backlinks      map[string]seoapi.BacklinkSummary     `json:"backlinks"`
	KeywordIdeas   []seoapi.KeywordIdea                  `json:"keyword_ideas"`
	Gaps           gap.Result                            `json:"gaps"`
	Enrichment     []seoapi.OverviewItem                 `json:"keyword_enrichment"`
	SearchIntent   []seoapi.IntentItem                   `json:"search_intent"`
	SERPAnalysis   map[string][]seoapi.SERPItem          `json:"serp_analysis"`
	EnrichedGaps   []gap.EnrichedGap                     `json:"enriched_gaps"`
	Categorized    gap.Categorized                       `json:"categorized_gaps"`
	Geo            map[string]geo.PageAudit              `json:"geo_analysis,omitempty"`
	Performance    []pagespeed.Result                    `json:"performance,omitempty"`
}

// AllDomains returns the target followed by the competitor domains in a
// stable order.
func (r Result) AllDomains() []string {
	domains := []string{r.Metadata.TargetDomain}
	for domain := range r.Metadata.Competitors {
		domains = append(domains, domain)
	}
	// Map order is random; competitors sort by domain for reproducibility.
	sort.Strings(domains[1:])
	return domains
}

// ProjectName derives the report folder name from the target domain:
// "example.com" becomes "Example Com".
func ProjectName(domain string) string {
	spaced := strings.ReplaceAll(domain, ".", " ")
	return cases.Title(language.English).String(spaced)
}

// Clone returns a deep copy of the result via JSON round trip, for callers
// that need an independent copy to mutate. Snapshots do not need it: both
// storage backends marshal at Save time.
func (r Result) Clone() (Result, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return Result{}, err
	}
	var copied Result
	if err := json.Unmarshal(raw, &copied); err != nil {
		return Result{}, err
	}
	return copied, nil
}
