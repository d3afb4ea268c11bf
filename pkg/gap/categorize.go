package gap

import (
	"sort"
	"strings"

	"seogap-go/pkg/keyword"
)

// Category names for the four opportunity buckets.
const (
	CategoryHighOpportunity = "high_opportunity"
	CategoryQuickWins       = "quick_wins"
	CategoryContentGaps     = "content_gaps"
	CategoryProductGaps     = "product_gaps"
)

// Intent values recognized by the categorizer.
const (
	IntentInformational = "informational"
	IntentTransactional = "transactional"
)

var contentSignals = []string{"how", "what", "best", "guide", "tips", "care"}

var commerceSignals = []string{
	"buy", "supplement", "vitamin", "product", "price", "cost", "shop", "store",
	"online", "order", "sale", "offer", "deal", "discount", "cheap", "best",
	"review", "dog food", "cat food", "pet food", "treats", "chews", "shampoo",
	"oil", "spray", "powder", "tablet", "medicine",
}

// Categorized is the total, mutually exclusive partition of enriched gaps.
type Categorized struct {
	HighOpportunity []EnrichedGap `json:"high_opportunity"`
	QuickWins       []EnrichedGap `json:"quick_wins"`
	ContentGaps     []EnrichedGap `json:"content_gaps"`
	ProductGaps     []EnrichedGap `json:"product_gaps"`
}

// Buckets returns the partition keyed by category name, in display order.
func (c Categorized) Buckets() map[string][]EnrichedGap {
	return map[string][]EnrichedGap{
		CategoryHighOpportunity: c.HighOpportunity,
		CategoryQuickWins:       c.QuickWins,
		CategoryContentGaps:     c.ContentGaps,
		CategoryProductGaps:     c.ProductGaps,
	}
}

// Total returns the number of categorized gaps across all buckets.
func (c Categorized) Total() int {
	return len(c.HighOpportunity) + len(c.QuickWins) + len(c.ContentGaps) + len(c.ProductGaps)
}

// Categorize assigns each gap to exactly one bucket using a first-match
// priority chain. The chain order is load-bearing: "best" is both a content
// and a commerce signal, and it routes to content_gaps because rule 3 runs
// before rule 4. Do not reorder or turn this into a scoring system.
//
// Malformed entries (no keyword text, negative volume) are skipped rather
// than failing the run. Each bucket is re-sorted by search volume
// descending, stable for ties.
func Categorize(gaps []EnrichedGap) Categorized {
	out := Categorized{
		HighOpportunity: []EnrichedGap{},
		QuickWins:       []EnrichedGap{},
		ContentGaps:     []EnrichedGap{},
		ProductGaps:     []EnrichedGap{},
	}

	for _, gap := range gaps {
		if gap.Keyword == "" || gap.SearchVolume < 0 {
			continue
		}

		lower := keyword.Normalize(gap.Keyword)

		switch {
		// High volume plus a strong competitor position, regardless of intent.
		case gap.SearchVolume >= 500 && gap.Position <= 10:
			out.HighOpportunity = append(out.HighOpportunity, gap)

		// Known difficulty below 40 and decent volume. A zero difficulty
		// means missing data and does not qualify.
		case gap.Difficulty != 0 && gap.Difficulty < 40 && gap.SearchVolume >= 100:
			out.QuickWins = append(out.QuickWins, gap)

		case gap.Intent == IntentInformational || containsAny(lower, contentSignals):
			out.ContentGaps = append(out.ContentGaps, gap)

		case gap.Intent == IntentTransactional || containsAny(lower, commerceSignals):
			out.ProductGaps = append(out.ProductGaps, gap)

		default:
			out.ContentGaps = append(out.ContentGaps, gap)
		}
	}

	sortByVolume(out.HighOpportunity)
	sortByVolume(out.QuickWins)
	sortByVolume(out.ContentGaps)
	sortByVolume(out.ProductGaps)

	return out
}

func containsAny(s string, signals []string) bool {
	for _, signal := range signals {
		if strings.Contains(s, signal) {
			return true
		}
	}
	return false
}

func sortByVolume(gaps []EnrichedGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].SearchVolume > gaps[j].SearchVolume
	})
}
