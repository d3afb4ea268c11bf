package gap

import "math"

// MetricsEntry is one keyword's difficulty inputs from the overview feed.
type MetricsEntry struct {
	Competition *float64
	CPC         *float64
}

// IntentEntry is one keyword's classification from the intent feed.
type IntentEntry struct {
	Intent string
}

// EnrichedGap is a Candidate joined with difficulty and intent metadata.
type EnrichedGap struct {
	Candidate
	Difficulty float64 `json:"difficulty"`
	Intent     string  `json:"intent"`
}

// IntentUnknown is the intent assigned when the feed has no entry.
const IntentUnknown = "unknown"

// Enrich left-joins gap candidates against the metrics and intent feeds,
// preserving input order.
//
// The join key is the literal keyword string, not the lowercased form: both
// feeds are queried with the exact top-100 keyword strings and echo them
// back verbatim, so the exact-case join is lossless in the real data flow.
// Missing entries degrade to zero difficulty, zero cpc and unknown intent;
// they are never an error.
func Enrich(gaps []Candidate, metrics map[string]MetricsEntry, intents map[string]IntentEntry) []EnrichedGap {
	enriched := make([]EnrichedGap, 0, len(gaps))
	for _, cand := range gaps {
		e := EnrichedGap{Candidate: cand, Intent: IntentUnknown}

		if entry, ok := metrics[cand.Keyword]; ok {
			if entry.Competition != nil {
				e.Difficulty = math.Round(*entry.Competition * 100)
			}
			if entry.CPC != nil {
				e.CPC = *entry.CPC
			} else {
				e.CPC = 0
			}
		} else {
			e.CPC = 0
		}

		if entry, ok := intents[cand.Keyword]; ok && entry.Intent != "" {
			e.Intent = entry.Intent
		}

		enriched = append(enriched, e)
	}
	return enriched
}
