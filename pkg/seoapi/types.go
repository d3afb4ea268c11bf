package seoapi

import "encoding/json"

// envelope is the common DataForSEO-style response wrapper. A request only
// succeeds when the envelope status code is statusOK.
type envelope struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Tasks         []task `json:"tasks"`
}

type task struct {
	Cost   float64           `json:"cost"`
	Result []json.RawMessage `json:"result"`
}

const statusOK = 20000

// OrganicMetrics are the organic-search aggregates of a domain overview.
type OrganicMetrics struct {
	Count int64   `json:"count"`
	ETV   float64 `json:"etv"`
	Pos1  int64   `json:"pos_1"`
}

// DomainOverview is one domain_rank_overview result row.
type DomainOverview struct {
	Target  string `json:"target"`
	Metrics struct {
		Organic OrganicMetrics `json:"organic"`
	} `json:"metrics"`
}

type overviewResult struct {
	Items []DomainOverview `json:"items"`
}

// KeywordInfo carries per-keyword volume and commercial metrics.
type KeywordInfo struct {
	SearchVolume int      `json:"search_volume"`
	CPC          *float64 `json:"cpc"`
	Competition  *float64 `json:"competition"`
}

// KeywordData wraps the keyword string with its metrics.
type KeywordData struct {
	Keyword     string      `json:"keyword"`
	KeywordInfo KeywordInfo `json:"keyword_info"`
}

// RankedKeywordItem is one ranked_keywords item: a keyword the domain
// ranks for, with its SERP placement.
type RankedKeywordItem struct {
	KeywordData       KeywordData `json:"keyword_data"`
	RankedSerpElement struct {
		SerpItem struct {
			RankGroup    int    `json:"rank_group"`
			RankAbsolute int    `json:"rank_absolute"`
			URL          string `json:"url"`
		} `json:"serp_item"`
	} `json:"ranked_serp_element"`
}

type rankedKeywordsResult struct {
	Items []RankedKeywordItem `json:"items"`
}

// BacklinkSummary is one bulk_referring_domains row.
type BacklinkSummary struct {
	Target           string `json:"target"`
	ReferringDomains int64  `json:"referring_domains"`
	Backlinks        int64  `json:"backlinks"`
}

type backlinksResult struct {
	Items []BacklinkSummary `json:"items"`
}

// KeywordIdea is one keyword_ideas suggestion.
type KeywordIdea struct {
	Keyword     string      `json:"keyword"`
	KeywordInfo KeywordInfo `json:"keyword_info"`
}

type keywordIdeasResult struct {
	Items []KeywordIdea `json:"items"`
}

// OverviewItem is one keyword_overview enrichment row.
type OverviewItem struct {
	Keyword     string      `json:"keyword"`
	KeywordInfo KeywordInfo `json:"keyword_info"`
}

type keywordOverviewResult struct {
	Items []OverviewItem `json:"items"`
}

// IntentItem is one search_intent classification row.
type IntentItem struct {
	Keyword       string `json:"keyword"`
	PrimaryIntent struct {
		Intent      string  `json:"intent"`
		Probability float64 `json:"probability"`
	} `json:"primary_intent"`
}

type searchIntentResult struct {
	Items []IntentItem `json:"items"`
}

// SERPItem is one organic SERP entry.
type SERPItem struct {
	Type         string `json:"type"`
	RankGroup    int    `json:"rank_group"`
	RankAbsolute int    `json:"rank_absolute"`
	Domain       string `json:"domain"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Description  string `json:"description"`
}

type serpResult struct {
	Items []SERPItem `json:"items"`
}
