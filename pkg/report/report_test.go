package report

import (
	"bytes"
	"strings"
	"testing"

	"seogap-go/pkg/analysis"
	"seogap-go/pkg/gap"
	"seogap-go/pkg/pagespeed"
	"seogap-go/pkg/social"
)

func sampleResult() analysis.Result {
	var result analysis.Result
	result.Metadata.CompanyName = "Paws Co"
	result.Metadata.TargetDomain = "target.com"
	result.Metadata.Location = "India"
	result.Metadata.TotalCost = 5.45
	result.Metadata.Competitors = map[string]string{"comp-a.com": "Comp A"}

	for i := 0; i < 30; i++ {
		result.Categorized.HighOpportunity = append(result.Categorized.HighOpportunity, gap.EnrichedGap{
			Candidate: gap.Candidate{
				Keyword:      "keyword",
				Competitor:   "comp-a.com",
				Position:     3,
				SearchVolume: 1000 - i,
			},
		})
	}
	result.Gaps.AllGaps = make([]gap.Candidate, 140)
	result.Gaps.Top100 = make([]gap.Candidate, 100)

	result.Site.SocialProfiles = map[string]social.Profile{
		"facebook":  {URL: "https://facebook.com/paws", Found: true},
		"instagram": {Found: false},
	}

	result.Performance = []pagespeed.Result{
		{URL: "https://target.com/", Device: "mobile", PerformanceScore: 87, LCP: 2.4},
		{URL: "https://target.com/", Device: "desktop", Error: "Quota exceeded"},
	}

	return result
}

func TestAssemble_CapsCategoryRows(t *testing.T) {
	data := Assemble(sampleResult())

	if data.Summary.HighOpportunity != 30 {
		t.Errorf("Expected full count 30 in summary, got %d", data.Summary.HighOpportunity)
	}
	if len(data.Categories) != 4 {
		t.Fatalf("Expected 4 category sections, got %d", len(data.Categories))
	}

	high := data.Categories[0]
	if high.Key != gap.CategoryHighOpportunity {
		t.Errorf("Expected high_opportunity section first, got %q", high.Key)
	}
	if len(high.Rows) != maxHighOpportunityRows {
		t.Errorf("Expected rows capped at %d, got %d", maxHighOpportunityRows, len(high.Rows))
	}
	if high.Total != 30 {
		t.Errorf("Expected total 30 despite cap, got %d", high.Total)
	}
	if len(data.Summary.TopKeywords) != maxTopKeywords {
		t.Errorf("Expected %d top keywords, got %d", maxTopKeywords, len(data.Summary.TopKeywords))
	}
}

func TestAssemble_SocialOrder(t *testing.T) {
	data := Assemble(sampleResult())

	if len(data.Social) != 2 {
		t.Fatalf("Expected 2 social entries, got %d", len(data.Social))
	}
	if data.Social[0].Platform != "facebook" || data.Social[1].Platform != "instagram" {
		t.Errorf("Expected platform display order, got %+v", data.Social)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Assemble(sampleResult())); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Paws Co",
		"target.com",
		"High Opportunity (30)",
		"https://facebook.com/paws",
		"Quota exceeded",
		"$5.45",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected rendered report to contain %q", want)
		}
	}
}

func TestRender_EscapesKeywordContent(t *testing.T) {
	result := sampleResult()
	result.Categorized.HighOpportunity[0].Keyword = `<script>alert("x")</script>`

	var buf bytes.Buffer
	if err := Render(&buf, Assemble(result)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(buf.String(), `<script>alert`) {
		t.Error("Expected keyword content HTML-escaped")
	}
}
