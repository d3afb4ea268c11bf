package report

import (
	"sort"
	"time"

	"seogap-go/pkg/analysis"
	"seogap-go/pkg/gap"
	"seogap-go/pkg/geo"
	"seogap-go/pkg/pagespeed"
	"seogap-go/pkg/sitemap"
	"seogap-go/pkg/social"
)

// Row caps per category table, matching the report's reading depth.
const (
	maxHighOpportunityRows = 25
	maxQuickWinRows        = 25
	maxContentGapRows      = 30
	maxProductGapRows      = 20
	maxTopKeywords         = 5
)

// CategorySection is one rendered gap bucket.
type CategorySection struct {
	Key         string
	Title       string
	Description string
	Total       int
	Rows        []gap.EnrichedGap
}

// SummaryStats are the headline numbers at the top of the report.
type SummaryStats struct {
	TotalGaps       int
	TopSelected     int
	HighOpportunity int
	QuickWins       int
	ContentGaps     int
	ProductGaps     int
	TotalCost       float64
	TopKeywords     []gap.EnrichedGap
}

// SocialEntry is one platform row in display order.
type SocialEntry struct {
	Platform string
	Profile  social.Profile
}

// DomainStat is one competitor comparison row.
type DomainStat struct {
	Domain           string
	OrganicKeywords  int64
	OrganicTraffic   float64
	ReferringDomains int64
}

// ReportData is everything the HTML template consumes.
type ReportData struct {
	GeneratedAt  time.Time
	CompanyName  string
	TargetDomain string
	Location     string
	Summary      SummaryStats
	Categories   []CategorySection
	DomainStats  []DomainStat
	SitemapURL   string
	Sitemap      *sitemap.Analysis
	Social       []SocialEntry
	LocalIntl    *social.Signals
	Geo          map[string]geo.PageAudit
	Performance  []pagespeed.Result
}

// Assemble flattens an analysis result into template-ready data.
func Assemble(result analysis.Result) ReportData {
	categorized := result.Categorized

	data := ReportData{
		GeneratedAt:  time.Now(),
		CompanyName:  result.Metadata.CompanyName,
		TargetDomain: result.Metadata.TargetDomain,
		Location:     result.Metadata.Location,
		Summary: SummaryStats{
			TotalGaps:       len(result.Gaps.AllGaps),
			TopSelected:     len(result.Gaps.Top100),
			HighOpportunity: len(categorized.HighOpportunity),
			QuickWins:       len(categorized.QuickWins),
			ContentGaps:     len(categorized.ContentGaps),
			ProductGaps:     len(categorized.ProductGaps),
			TotalCost:       result.Metadata.TotalCost,
			TopKeywords:     capRows(categorized.HighOpportunity, maxTopKeywords),
		},
		Categories: []CategorySection{
			{
				Key:         gap.CategoryHighOpportunity,
				Title:       "High Opportunity",
				Description: "High-volume keywords where a competitor already ranks on page one.",
				Total:       len(categorized.HighOpportunity),
				Rows:        capRows(categorized.HighOpportunity, maxHighOpportunityRows),
			},
			{
				Key:         gap.CategoryQuickWins,
				Title:       "Quick Wins",
				Description: "Low-difficulty keywords with workable volume.",
				Total:       len(categorized.QuickWins),
				Rows:        capRows(categorized.QuickWins, maxQuickWinRows),
			},
			{
				Key:         gap.CategoryContentGaps,
				Title:       "Content Gaps",
				Description: "Informational queries best served by articles and guides.",
				Total:       len(categorized.ContentGaps),
				Rows:        capRows(categorized.ContentGaps, maxContentGapRows),
			},
			{
				Key:         gap.CategoryProductGaps,
				Title:       "Product Gaps",
				Description: "Transactional queries pointing at missing product coverage.",
				Total:       len(categorized.ProductGaps),
				Rows:        capRows(categorized.ProductGaps, maxProductGapRows),
			},
		},
		SitemapURL:  result.Site.SitemapURL,
		Sitemap:     result.Site.Sitemap,
		LocalIntl:   result.Site.LocalIntl,
		Geo:         result.Geo,
		Performance: result.Performance,
	}

	for _, platform := range social.Platforms {
		if profile, ok := result.Site.SocialProfiles[platform]; ok {
			data.Social = append(data.Social, SocialEntry{Platform: platform, Profile: profile})
		}
	}

	for _, domain := range result.AllDomains() {
		stat := DomainStat{Domain: domain}
		if overview, ok := result.DomainMetrics[domain]; ok && overview != nil {
			stat.OrganicKeywords = overview.Metrics.Organic.Count
			stat.OrganicTraffic = overview.Metrics.Organic.ETV
		}
		if summary, ok := result.Backlinks[domain]; ok {
			stat.ReferringDomains = summary.ReferringDomains
		}
		data.DomainStats = append(data.DomainStats, stat)
	}

	return data
}

// GeoKeys returns the audit page labels in sorted order for rendering.
func (d ReportData) GeoKeys() []string {
	keys := make([]string, 0, len(d.Geo))
	for key := range d.Geo {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func capRows(rows []gap.EnrichedGap, limit int) []gap.EnrichedGap {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
