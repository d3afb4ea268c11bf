package gap

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestEnrich_JoinsMetricsAndIntent(t *testing.T) {
	gaps := []Candidate{
		{Keyword: "dog probiotics", SearchVolume: 400, CPC: 0.9},
	}
	metrics := map[string]MetricsEntry{
		"dog probiotics": {Competition: floatPtr(0.35), CPC: floatPtr(1.8)},
	}
	intents := map[string]IntentEntry{
		"dog probiotics": {Intent: "commercial"},
	}

	enriched := Enrich(gaps, metrics, intents)
	if len(enriched) != 1 {
		t.Fatalf("Expected 1 enriched gap, got %d", len(enriched))
	}

	e := enriched[0]
	if e.Difficulty != 35 {
		t.Errorf("Expected difficulty 35, got %f", e.Difficulty)
	}
	if e.CPC != 1.8 {
		t.Errorf("Expected feed cpc to replace candidate cpc, got %f", e.CPC)
	}
	if e.Intent != "commercial" {
		t.Errorf("Expected commercial intent, got %q", e.Intent)
	}
}

func TestEnrich_DifficultyRounds(t *testing.T) {
	gaps := []Candidate{{Keyword: "kw"}}
	metrics := map[string]MetricsEntry{"kw": {Competition: floatPtr(0.666)}}

	enriched := Enrich(gaps, metrics, nil)
	if enriched[0].Difficulty != 67 {
		t.Errorf("Expected rounded difficulty 67, got %f", enriched[0].Difficulty)
	}
}

func TestEnrich_MissDegradesToDefaults(t *testing.T) {
	gaps := []Candidate{{Keyword: "unlisted keyword", SearchVolume: 50, CPC: 2.5}}

	enriched := Enrich(gaps, map[string]MetricsEntry{}, map[string]IntentEntry{})
	e := enriched[0]
	if e.Difficulty != 0 {
		t.Errorf("Expected zero difficulty on miss, got %f", e.Difficulty)
	}
	if e.CPC != 0 {
		t.Errorf("Expected cpc reset to zero on miss, got %f", e.CPC)
	}
	if e.Intent != IntentUnknown {
		t.Errorf("Expected unknown intent on miss, got %q", e.Intent)
	}
}

func TestEnrich_ExactCaseJoin(t *testing.T) {
	// The join key is the literal keyword string; a case mismatch is a miss.
	gaps := []Candidate{{Keyword: "Dog Food"}}
	metrics := map[string]MetricsEntry{"dog food": {Competition: floatPtr(0.5)}}

	enriched := Enrich(gaps, metrics, nil)
	if enriched[0].Difficulty != 0 {
		t.Errorf("Expected case-mismatched feed entry to miss, got difficulty %f", enriched[0].Difficulty)
	}
}

func TestEnrich_NullFeedValues(t *testing.T) {
	gaps := []Candidate{{Keyword: "kw", CPC: 3.0}}
	metrics := map[string]MetricsEntry{"kw": {Competition: nil, CPC: nil}}

	enriched := Enrich(gaps, metrics, nil)
	if enriched[0].Difficulty != 0 || enriched[0].CPC != 0 {
		t.Errorf("Expected null feed values to default to zero, got %+v", enriched[0])
	}
}

func TestEnrich_PreservesOrder(t *testing.T) {
	gaps := []Candidate{
		{Keyword: "first"},
		{Keyword: "second"},
		{Keyword: "third"},
	}

	enriched := Enrich(gaps, nil, nil)
	for i, want := range []string{"first", "second", "third"} {
		if enriched[i].Keyword != want {
			t.Fatalf("Order not preserved at %d: got %q", i, enriched[i].Keyword)
		}
	}
}
