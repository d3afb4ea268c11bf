package keyword

import (
	"fmt"
	"strings"

	"seogap-go/pkg/logger"
)

// Normalize returns the case-insensitive identity key for a keyword.
// Display keeps the original casing; comparisons and dedup use this form.
func Normalize(kw string) string {
	return strings.ToLower(kw)
}

// LoadRanked normalizes raw ranked-keyword items for a domain.
//
// Items without keyword text are skipped: a bad record never aborts the
// corpus. Negative volume or rank indicates an upstream contract break and
// is returned as an error instead.
func LoadRanked(domain string, items []RankedItem) ([]Record, error) {
	log := logger.GetLogger().WithField("component", "keyword_loader")

	records := make([]Record, 0, len(items))
	for i, item := range items {
		if item.Keyword == "" {
			log.WithField("index", i).Debug("Skipping ranked item without keyword text")
			continue
		}

		if item.SearchVolume < 0 {
			return nil, fmt.Errorf("ranked item %q: negative search volume %d", item.Keyword, item.SearchVolume)
		}

		rank := NotRanked
		if item.RankGroup != nil {
			if *item.RankGroup < 0 {
				return nil, fmt.Errorf("ranked item %q: negative rank %d", item.Keyword, *item.RankGroup)
			}
			if *item.RankGroup > 0 {
				rank = *item.RankGroup
			}
		}

		competition := 0.0
		if item.Competition != nil {
			competition = *item.Competition
		}

		records = append(records, Record{
			Keyword:      item.Keyword,
			Domain:       domain,
			Rank:         rank,
			SearchVolume: item.SearchVolume,
			CPC:          item.CPC,
			Competition:  competition,
		})
	}

	return records, nil
}
