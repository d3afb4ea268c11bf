package gap

import (
	"reflect"
	"testing"

	"seogap-go/pkg/keyword"
)

func enriched(kw string, volume, position int, difficulty float64, intent string) EnrichedGap {
	return EnrichedGap{
		Candidate: Candidate{
			Keyword:      kw,
			Position:     position,
			SearchVolume: volume,
		},
		Difficulty: difficulty,
		Intent:     intent,
	}
}

func TestCategorize_PriorityChain(t *testing.T) {
	cases := []struct {
		name string
		gap  EnrichedGap
		want string
	}{
		{
			// Rule 1 fires first regardless of substrings or intent.
			name: "high volume and position beats content signal",
			gap:  enriched("best dog supplements", 1200, 4, 0, IntentUnknown),
			want: CategoryHighOpportunity,
		},
		{
			name: "low difficulty decent volume",
			gap:  enriched("dog joint chews", 200, 40, 25, IntentUnknown),
			want: CategoryQuickWins,
		},
		{
			name: "zero difficulty never qualifies as quick win",
			gap:  enriched("dog joint oil", 200, 40, 0, IntentUnknown),
			want: CategoryProductGaps,
		},
		{
			name: "informational intent",
			gap:  enriched("puppy teething timeline", 80, 40, 0, IntentInformational),
			want: CategoryContentGaps,
		},
		{
			name: "content signal substring",
			gap:  enriched("best leash for puppies", 80, 40, 0, IntentUnknown),
			want: CategoryContentGaps,
		},
		{
			name: "commerce substrings",
			gap:  enriched("buy dog vitamins online", 50, 40, 0, IntentUnknown),
			want: CategoryProductGaps,
		},
		{
			name: "transactional intent without substrings",
			gap:  enriched("pawfect bundles", 50, 40, 0, IntentTransactional),
			want: CategoryProductGaps,
		},
		{
			name: "default bucket",
			gap:  enriched("zoomies", 50, 40, 0, IntentUnknown),
			want: CategoryContentGaps,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Categorize([]EnrichedGap{tc.gap})
			buckets := result.Buckets()

			got := ""
			for name, bucket := range buckets {
				if len(bucket) > 0 {
					got = name
				}
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCategorize_ZeroDifficultyFallsThrough(t *testing.T) {
	// Explicit check for the quick-win truthiness rule: difficulty 0 from
	// missing data must not land in quick_wins even with enough volume.
	gap := enriched("generic phrase", 300, 50, 0, IntentUnknown)
	result := Categorize([]EnrichedGap{gap})
	if len(result.QuickWins) != 0 {
		t.Error("Expected zero-difficulty gap to skip quick_wins")
	}
	if len(result.ContentGaps) != 1 {
		t.Error("Expected default routing to content_gaps")
	}
}

func TestCategorize_BestRoutesToContent(t *testing.T) {
	// "best" appears in both signal lists; rule 3 wins.
	gap := enriched("best harness", 80, 40, 0, IntentUnknown)
	result := Categorize([]EnrichedGap{gap})
	if len(result.ContentGaps) != 1 || len(result.ProductGaps) != 0 {
		t.Error("Expected best-keyword to route to content_gaps, not product_gaps")
	}
}

func TestCategorize_PartitionIsTotal(t *testing.T) {
	gaps := []EnrichedGap{
		enriched("high kw", 900, 3, 0, IntentUnknown),
		enriched("quick kw thing", 150, 40, 20, IntentUnknown),
		enriched("how to brush", 60, 40, 0, IntentUnknown),
		enriched("buy brush", 60, 40, 0, IntentUnknown),
		enriched("misc phrase", 60, 40, 0, IntentUnknown),
	}

	result := Categorize(gaps)
	if result.Total() != len(gaps) {
		t.Errorf("Expected every gap in exactly one bucket, got total %d of %d", result.Total(), len(gaps))
	}

	seen := make(map[string]int)
	for _, bucket := range result.Buckets() {
		for _, g := range bucket {
			seen[keyword.Normalize(g.Keyword)]++
		}
	}
	for kw, count := range seen {
		if count != 1 {
			t.Errorf("Keyword %q appears in %d buckets", kw, count)
		}
	}
}

func TestCategorize_SkipsMalformed(t *testing.T) {
	gaps := []EnrichedGap{
		enriched("", 100, 3, 0, IntentUnknown),
		{Candidate: Candidate{Keyword: "bad volume", SearchVolume: -5}},
		enriched("good keyword", 100, 3, 20, IntentUnknown),
	}

	result := Categorize(gaps)
	if result.Total() != 1 {
		t.Errorf("Expected malformed records skipped, got total %d", result.Total())
	}
}

func TestCategorize_BucketsSortedByVolume(t *testing.T) {
	gaps := []EnrichedGap{
		enriched("how to a", 50, 40, 0, IntentUnknown),
		enriched("how to b", 300, 40, 0, IntentUnknown),
		enriched("how to c", 120, 40, 0, IntentUnknown),
	}

	result := Categorize(gaps)
	bucket := result.ContentGaps
	for i := 1; i < len(bucket); i++ {
		if bucket[i].SearchVolume > bucket[i-1].SearchVolume {
			t.Fatalf("Bucket not sorted by volume at index %d", i)
		}
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	target := []keyword.Record{{Keyword: "dog food", Rank: 1, SearchVolume: 1000}}
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{
			{Keyword: "dog treats", Rank: 5, SearchVolume: 600},
			{Keyword: "buy dog vitamins online", Rank: 12, SearchVolume: 50},
			{Keyword: "how to trim nails", Rank: 8, SearchVolume: 250},
		}},
	}
	metrics := map[string]MetricsEntry{
		"dog treats": {Competition: floatPtr(0.3), CPC: floatPtr(0.8)},
	}
	intents := map[string]IntentEntry{
		"how to trim nails": {Intent: IntentInformational},
	}

	run := func() Categorized {
		result := Compute(target, competitors)
		return Categorize(Enrich(result.Top100, metrics, intents))
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected bit-identical categorization across runs")
	}
}
