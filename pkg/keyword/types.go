package keyword

// NotRanked is the sentinel rank for keywords without a usable SERP position.
const NotRanked = 999

// Record is the normalized in-memory representation of one ranked keyword
// for one domain.
type Record struct {
	Keyword      string  `json:"keyword"`
	Domain       string  `json:"domain"`
	Rank         int     `json:"rank"`
	SearchVolume int     `json:"search_volume"`
	CPC          float64 `json:"cpc"`
	Competition  float64 `json:"competition"`
}

// RankedItem mirrors one entry of the raw ranked-keywords feed.
// Competition may be null in the feed; RankGroup may be absent.
type RankedItem struct {
	Keyword      string   `json:"keyword"`
	RankGroup    *int     `json:"rank_group"`
	SearchVolume int      `json:"search_volume"`
	CPC          float64  `json:"cpc"`
	Competition  *float64 `json:"competition"`
}
