package gap

import (
	"reflect"
	"testing"

	"seogap-go/pkg/keyword"
)

func record(kw string, rank, volume int) keyword.Record {
	return keyword.Record{Keyword: kw, Rank: rank, SearchVolume: volume}
}

func TestCompute_ExcludesTargetKeywords(t *testing.T) {
	target := []keyword.Record{record("dog food", 1, 1000)}
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{
			record("dog food", 3, 800),
			record("dog treats", 5, 600),
		}},
	}

	result := Compute(target, competitors)

	if len(result.AllGaps) != 1 {
		t.Fatalf("Expected 1 gap, got %d", len(result.AllGaps))
	}
	if result.AllGaps[0].Keyword != "dog treats" {
		t.Errorf("Expected gap to be dog treats, got %q", result.AllGaps[0].Keyword)
	}
	if result.AllGaps[0].Competitor != "comp-a.com" {
		t.Errorf("Expected competitor attribution, got %q", result.AllGaps[0].Competitor)
	}
	if result.AllGaps[0].Position != 5 {
		t.Errorf("Expected competitor position 5, got %d", result.AllGaps[0].Position)
	}
}

func TestCompute_CaseInsensitiveMatch(t *testing.T) {
	target := []keyword.Record{record("Dog Food", 1, 1000)}
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{record("dog FOOD", 3, 800)}},
	}

	result := Compute(target, competitors)
	if len(result.AllGaps) != 0 {
		t.Errorf("Expected case-insensitive exclusion, got %d gaps", len(result.AllGaps))
	}
}

func TestCompute_MissingTargetMeansEverythingIsAGap(t *testing.T) {
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{
			record("pet vitamins", 2, 300),
			record("pet wellness", 4, 500),
		}},
	}

	result := Compute(nil, competitors)
	if len(result.AllGaps) != 2 {
		t.Errorf("Expected all competitor keywords as gaps, got %d", len(result.AllGaps))
	}
}

func TestCompute_EmptyCompetitorInput(t *testing.T) {
	result := Compute([]keyword.Record{record("dog food", 1, 1000)}, nil)
	if len(result.AllGaps) != 0 || len(result.Top100) != 0 {
		t.Errorf("Expected empty result, got %d all / %d top", len(result.AllGaps), len(result.Top100))
	}
}

func TestCompute_SortsByVolumeDescending(t *testing.T) {
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{
			record("low", 1, 100),
			record("high", 2, 900),
			record("mid", 3, 400),
		}},
	}

	result := Compute(nil, competitors)
	for i := 1; i < len(result.AllGaps); i++ {
		if result.AllGaps[i].SearchVolume > result.AllGaps[i-1].SearchVolume {
			t.Fatalf("AllGaps not sorted by volume at index %d", i)
		}
	}
	if result.AllGaps[0].Keyword != "high" {
		t.Errorf("Expected high first, got %q", result.AllGaps[0].Keyword)
	}
}

func TestCompute_DedupKeepsHighestVolume(t *testing.T) {
	// Two competitors rank for the same keyword at different volumes.
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{record("pet wellness", 7, 500)}},
		{Domain: "comp-b.com", Records: []keyword.Record{record("Pet Wellness", 2, 700)}},
	}

	result := Compute(nil, competitors)

	if len(result.AllGaps) != 2 {
		t.Fatalf("Expected both candidates in all_gaps, got %d", len(result.AllGaps))
	}
	if len(result.Top100) != 1 {
		t.Fatalf("Expected 1 deduplicated keyword, got %d", len(result.Top100))
	}
	winner := result.Top100[0]
	if winner.SearchVolume != 700 || winner.Competitor != "comp-b.com" {
		t.Errorf("Expected volume-700 comp-b instance to win, got %+v", winner)
	}
}

func TestCompute_TieBreakFollowsDomainOrder(t *testing.T) {
	// Equal volumes: first-listed competitor wins the dedup slot.
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{record("pet care", 9, 300)}},
		{Domain: "comp-b.com", Records: []keyword.Record{record("pet care", 1, 300)}},
	}

	result := Compute(nil, competitors)
	if result.Top100[0].Competitor != "comp-a.com" {
		t.Errorf("Expected caller domain order tie-break, got %q", result.Top100[0].Competitor)
	}
}

func TestCompute_Top100Cap(t *testing.T) {
	records := make([]keyword.Record, 0, 150)
	for i := 0; i < 150; i++ {
		records = append(records, record(keywordN(i), 1, 1000-i))
	}
	competitors := []CompetitorKeywords{{Domain: "comp-a.com", Records: records}}

	result := Compute(nil, competitors)
	if len(result.Top100) != 100 {
		t.Errorf("Expected top list capped at 100, got %d", len(result.Top100))
	}
	if len(result.AllGaps) != 150 {
		t.Errorf("Expected full list uncapped, got %d", len(result.AllGaps))
	}

	seen := make(map[string]bool)
	for _, cand := range result.Top100 {
		key := keyword.Normalize(cand.Keyword)
		if seen[key] {
			t.Fatalf("Duplicate keyword %q in top list", key)
		}
		seen[key] = true
	}
}

func TestCompute_Idempotent(t *testing.T) {
	target := []keyword.Record{record("dog food", 1, 1000)}
	competitors := []CompetitorKeywords{
		{Domain: "comp-a.com", Records: []keyword.Record{
			record("dog treats", 5, 600),
			record("pet wellness", 7, 600),
		}},
		{Domain: "comp-b.com", Records: []keyword.Record{record("pet wellness", 2, 700)}},
	}

	first := Compute(target, competitors)
	second := Compute(target, competitors)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results for identical inputs")
	}
}

func keywordN(i int) string {
	letters := "abcdefghij"
	return "kw " + string(letters[i/10%10]) + string(letters[i%10]) + string(letters[i/100%10])
}
