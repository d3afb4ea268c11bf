package gap

import (
	"sort"

	"seogap-go/pkg/keyword"
)

// Candidate is a keyword a competitor ranks for that the target does not.
type Candidate struct {
	Keyword      string  `json:"keyword"`
	Competitor   string  `json:"competitor"`
	Position     int     `json:"competitor_position"`
	SearchVolume int     `json:"search_volume"`
	CPC          float64 `json:"cpc"`
	Competition  float64 `json:"competition"`
}

// CompetitorKeywords pairs a competitor domain with its ranked records.
// This is a slice, not a map: the caller-supplied domain order is the
// tie-break for equal-volume candidates.
type CompetitorKeywords struct {
	Domain  string
	Records []keyword.Record
}

// Result holds both views of the gap computation: the full volume-sorted
// candidate list for reporting, and the deduplicated top 100.
type Result struct {
	AllGaps []Candidate `json:"all_gaps"`
	Top100  []Candidate `json:"top_100"`
}

const topKeywordLimit = 100

// Compute finds every competitor keyword absent from the target's keyword
// set (case-insensitive), sorts candidates by search volume descending with
// a stable tie-break on emission order, and keeps the first occurrence per
// keyword up to 100 unique entries.
//
// An empty or missing target corpus means every competitor keyword is a gap.
func Compute(target []keyword.Record, competitors []CompetitorKeywords) Result {
	targetSet := make(map[string]struct{}, len(target))
	for _, rec := range target {
		if rec.Keyword == "" {
			continue
		}
		targetSet[keyword.Normalize(rec.Keyword)] = struct{}{}
	}

	all := []Candidate{}
	for _, comp := range competitors {
		for _, rec := range comp.Records {
			if rec.Keyword == "" {
				continue
			}
			if _, ranked := targetSet[keyword.Normalize(rec.Keyword)]; ranked {
				continue
			}

			position := rec.Rank
			if position <= 0 {
				position = keyword.NotRanked
			}

			all = append(all, Candidate{
				Keyword:      rec.Keyword,
				Competitor:   comp.Domain,
				Position:     position,
				SearchVolume: rec.SearchVolume,
				CPC:          rec.CPC,
				Competition:  rec.Competition,
			})
		}
	}

	// Stable: equal volumes keep domain order, then within-domain order.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].SearchVolume > all[j].SearchVolume
	})

	seen := make(map[string]struct{}, topKeywordLimit)
	top := make([]Candidate, 0, topKeywordLimit)
	for _, cand := range all {
		key := keyword.Normalize(cand.Keyword)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		top = append(top, cand)
		if len(top) >= topKeywordLimit {
			break
		}
	}

	return Result{AllGaps: all, Top100: top}
}
