package analysis

import (
	"seogap-go/pkg/gap"
	"seogap-go/pkg/keyword"
	"seogap-go/pkg/seoapi"
)

// toRankedItems adapts API ranked-keyword rows to loader inputs. A zero
// rank group is passed as nil so the loader applies its sentinel.
func toRankedItems(items []seoapi.RankedKeywordItem) []keyword.RankedItem {
	converted := make([]keyword.RankedItem, 0, len(items))
	for _, item := range items {
		ranked := keyword.RankedItem{
			Keyword:      item.KeywordData.Keyword,
			SearchVolume: item.KeywordData.KeywordInfo.SearchVolume,
			Competition:  item.KeywordData.KeywordInfo.Competition,
		}
		if item.KeywordData.KeywordInfo.CPC != nil {
			ranked.CPC = *item.KeywordData.KeywordInfo.CPC
		}
		if rg := item.RankedSerpElement.SerpItem.RankGroup; rg > 0 {
			ranked.RankGroup = &rg
		}
		converted = append(converted, ranked)
	}
	return converted
}

// metricsFeed keys enrichment rows by their literal keyword string.
func metricsFeed(items []seoapi.OverviewItem) map[string]gap.MetricsEntry {
	feed := make(map[string]gap.MetricsEntry, len(items))
	for _, item := range items {
		feed[item.Keyword] = gap.MetricsEntry{
			Competition: item.KeywordInfo.Competition,
			CPC:         item.KeywordInfo.CPC,
		}
	}
	return feed
}

// intentFeed keys intent rows by their literal keyword string.
func intentFeed(items []seoapi.IntentItem) map[string]gap.IntentEntry {
	feed := make(map[string]gap.IntentEntry, len(items))
	for _, item := range items {
		feed[item.Keyword] = gap.IntentEntry{Intent: item.PrimaryIntent.Intent}
	}
	return feed
}
