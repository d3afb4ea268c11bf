package sitemap

import (
	"net/url"
	"strings"
	"time"
)

// Page types assigned by CategorizeURL.
const (
	TypeProduct  = "product"
	TypeCategory = "category"
	TypeContent  = "content"
	TypeStatic   = "static"
	TypeOther    = "other"
)

const (
	freshnessWindow = 90 * 24 * time.Hour
	sampleSize      = 20
)

// Analysis summarizes a domain's sitemap structure.
type Analysis struct {
	TotalURLs      int            `json:"total_urls"`
	Categorization map[string]int `json:"categorization"`
	Freshness      Freshness      `json:"freshness"`
	SampleURLs     []Entry        `json:"sample_urls"`
}

// Freshness reports how much of the sitemap was modified recently.
// FreshnessPercentage is nil when no URL carries a lastmod date.
type Freshness struct {
	FreshCount          int      `json:"fresh_count"`
	FreshnessPercentage *float64 `json:"freshness_percentage"`
	HasDates            bool     `json:"has_dates"`
}

var productPaths = []string{"/products/", "/pricing", "/features", "/solution", "/service", "/tool"}
var categoryPaths = []string{"/collections/", "/category/", "/tag/", "/topics/", "/sections/"}
var contentPaths = []string{"/blogs/", "/articles/", "/news/", "/post/", "/guide/", "/tutorial/", "/blog"}
var datePaths = []string{"/2023/", "/2024/", "/2025/"}
var staticPaths = []string{"/pages/", "/about", "/contact", "/terms", "/privacy", "/legal"}

// CategorizeURL classifies a page URL by path heuristics.
func CategorizeURL(raw string) string {
	lower := strings.ToLower(raw)

	switch {
	case containsAny(lower, productPaths):
		return TypeProduct
	case containsAny(lower, categoryPaths):
		return TypeCategory
	case containsAny(lower, contentPaths), containsAny(lower, datePaths):
		return TypeContent
	case containsAny(lower, staticPaths):
		return TypeStatic
	}

	// Deep extension-less paths are usually content pages.
	if parsed, err := url.Parse(raw); err == nil {
		path := parsed.Path
		segments := strings.Split(path, "/")
		if strings.Count(path, "/") > 2 && !strings.Contains(segments[len(segments)-1], ".") {
			return TypeContent
		}
	}

	return TypeOther
}

// Analyze categorizes sitemap entries and computes freshness against now.
func Analyze(entries []Entry, now time.Time) Analysis {
	categorization := map[string]int{
		TypeProduct:  0,
		TypeCategory: 0,
		TypeContent:  0,
		TypeStatic:   0,
		TypeOther:    0,
	}

	for i := range entries {
		pageType := CategorizeURL(entries[i].Loc)
		categorization[pageType]++
		entries[i].Type = pageType
	}

	cutoff := now.Add(-freshnessWindow)
	freshCount := 0
	withDates := 0
	for _, entry := range entries {
		if entry.LastMod == "" {
			continue
		}
		withDates++
		if mod, ok := parseLastMod(entry.LastMod); ok && mod.After(cutoff) {
			freshCount++
		}
	}

	freshness := Freshness{
		FreshCount: freshCount,
		HasDates:   withDates > 0,
	}
	if withDates > 0 && len(entries) > 0 {
		pct := round1(float64(freshCount) / float64(len(entries)) * 100)
		freshness.FreshnessPercentage = &pct
	}

	sample := entries
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	return Analysis{
		TotalURLs:      len(entries),
		Categorization: categorization,
		Freshness:      freshness,
		SampleURLs:     sample,
	}
}

func parseLastMod(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
