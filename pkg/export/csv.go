package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"seogap-go/pkg/gap"
	"seogap-go/pkg/logger"
	"seogap-go/pkg/pagespeed"
	"seogap-go/pkg/seoapi"
)

// Exporter writes tabular CSV exports under <projectDir>/exports/.
type Exporter struct {
	dir string
	log *logger.Logger
}

func NewExporter(projectDir string) (*Exporter, error) {
	dir := filepath.Join(projectDir, "exports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	return &Exporter{
		dir: dir,
		log: logger.GetLogger().WithField("component", "exporter"),
	}, nil
}

// Dir returns the export directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// WriteKeywordGaps exports the top gap keywords with enrichment columns.
func (e *Exporter) WriteKeywordGaps(gaps []gap.EnrichedGap) (string, error) {
	rows := [][]string{{"Keyword", "Search Volume", "Competitor", "Competitor Position", "Difficulty", "Intent"}}
	for _, g := range gaps {
		rows = append(rows, []string{
			g.Keyword,
			strconv.Itoa(g.SearchVolume),
			g.Competitor,
			strconv.Itoa(g.Position),
			strconv.FormatFloat(g.Difficulty, 'f', -1, 64),
			g.Intent,
		})
	}
	return e.write("keyword_gaps.csv", rows)
}

// WriteCurrentRankings exports the target domain's ranked keywords.
func (e *Exporter) WriteCurrentRankings(items []seoapi.RankedKeywordItem) (string, error) {
	rows := [][]string{{"Keyword", "Position", "Volume", "URL"}}
	for _, item := range items {
		rows = append(rows, []string{
			item.KeywordData.Keyword,
			strconv.Itoa(item.RankedSerpElement.SerpItem.RankGroup),
			strconv.Itoa(item.KeywordData.KeywordInfo.SearchVolume),
			item.RankedSerpElement.SerpItem.URL,
		})
	}
	return e.write("current_rankings.csv", rows)
}

// WritePerformance exports the page speed audit results.
func (e *Exporter) WritePerformance(results []pagespeed.Result) (string, error) {
	rows := [][]string{{"URL", "Device", "Score", "LCP", "FID", "CLS"}}
	for _, r := range results {
		rows = append(rows, []string{
			r.URL,
			r.Device,
			strconv.FormatFloat(r.PerformanceScore, 'f', -1, 64),
			strconv.FormatFloat(r.LCP, 'f', -1, 64),
			strconv.FormatFloat(r.FID, 'f', -1, 64),
			strconv.FormatFloat(r.CLS, 'f', -1, 64),
		})
	}
	return e.write("performance.csv", rows)
}

func (e *Exporter) write(filename string, rows [][]string) (string, error) {
	path := filepath.Join(e.dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.log.WithFields(map[string]interface{}{
		"file": path,
		"rows": len(rows) - 1,
	}).Info("CSV exported")
	return path, nil
}
