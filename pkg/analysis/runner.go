package analysis

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"seogap-go/internal/config"
	"seogap-go/pkg/gap"
	"seogap-go/pkg/geo"
	"seogap-go/pkg/keyword"
	"seogap-go/pkg/logger"
	"seogap-go/pkg/pagespeed"
	"seogap-go/pkg/seoapi"
	"seogap-go/pkg/sitemap"
	"seogap-go/pkg/social"
	"seogap-go/pkg/storage"
)

// Snapshot keys written after each phase.
const (
	KeySignals     = "analysis_data"
	KeyPhase1      = "dataforseo_phase1"
	KeyFinal       = "dataforseo_final"
	KeyGeo         = "geo_analysis"
	KeyPerformance = "performance_analysis"
)

const rankedKeywordLimit = 100

// Runner drives the analysis phases sequentially and persists a snapshot
// after each one.
type Runner struct {
	cfg       *config.Config
	api       *seoapi.Client
	fetcher   *sitemap.Fetcher
	scraper   *social.Client
	auditor   *geo.Analyzer
	perf      *pagespeed.Client
	store     storage.Storage
	log       *logger.Logger
}

func NewRunner(cfg *config.Config, store storage.Storage) *Runner {
	return &Runner{
		cfg: cfg,
		api: seoapi.NewClient(seoapi.Config{
			Endpoint: cfg.APIs.Labs.Endpoint,
			Login:    cfg.APIs.Labs.Login,
			Password: cfg.APIs.Labs.Password,
			Timeout:  time.Duration(cfg.APIs.Labs.Timeout) * time.Second,
			Pace:     time.Duration(cfg.APIs.Labs.PaceMs) * time.Millisecond,
		}),
		fetcher: sitemap.NewFetcher(),
		scraper: social.NewClient(),
		auditor: geo.NewAnalyzer(),
		perf:    pagespeed.NewClient(cfg.APIs.PageSpeed.Endpoint, cfg.APIs.PageSpeed.APIKey),
		store:   store,
		log:     logger.GetLogger().WithField("component", "analysis_runner"),
	}
}

// NewResult seeds a run with metadata from configuration.
func (r *Runner) NewResult() Result {
	competitors := make(map[string]string, len(r.cfg.Competitors))
	for _, comp := range r.cfg.Competitors {
		competitors[comp.Domain] = comp.Name
	}

	return Result{
		Metadata: Metadata{
			TargetDomain:   r.cfg.Target.Domain,
			CompanyName:    r.cfg.Target.CompanyName,
			Competitors:    competitors,
			Location:       r.cfg.Location.Country,
			Language:       r.cfg.Location.LanguageCode,
			CollectionDate: time.Now(),
		},
		DomainMetrics:  map[string]*seoapi.DomainOverview{},
		RankedKeywords: map[string][]seoapi.RankedKeywordItem{},
		Backlinks:      map[string]seoapi.BacklinkSummary{},
		SERPAnalysis:   map[string][]seoapi.SERPItem{},
	}
}

// CollectSignals scrapes the target's sitemap, social profiles and
// local/international markers. Scrape failures degrade to empty sections.
func (r *Runner) CollectSignals(ctx context.Context, result Result) (Result, error) {
	target := result.Metadata.TargetDomain
	r.log.WithField("domain", target).Info("Collecting site signals")

	entries, sitemapURL, err := r.fetcher.Fetch(ctx, target)
	if err != nil {
		r.log.WithError(err).Warn("Sitemap analysis unavailable")
	} else {
		analysis := sitemap.Analyze(entries, time.Now())
		result.Site.Sitemap = &analysis
		result.Site.SitemapURL = sitemapURL
	}

	doc, err := r.scraper.FetchHomepage(ctx, target)
	if err != nil {
		r.log.WithError(err).Warn("Homepage scrape unavailable")
	} else {
		result.Site.SocialProfiles = social.FindProfiles(doc, target)
		signals := social.AnalyzeSignals(doc)
		result.Site.LocalIntl = &signals
	}

	return result, r.snapshot(ctx, KeySignals, result)
}

// CollectAPIData runs the independent API calls: domain metrics and ranked
// keywords per domain, bulk backlinks, and keyword ideas. Individual call
// failures leave their section empty.
func (r *Runner) CollectAPIData(ctx context.Context, result Result) (Result, error) {
	location := result.Metadata.Location
	lang := result.Metadata.Language
	domains := result.AllDomains()

	for _, domain := range domains {
		overview, err := r.api.DomainRankOverview(ctx, domain, location, lang)
		if err != nil {
			r.log.WithField("domain", domain).WithError(err).Warn("Domain metrics unavailable")
		} else if overview != nil {
			result.DomainMetrics[domain] = overview
		}
	}

	for _, domain := range domains {
		items, err := r.api.RankedKeywords(ctx, domain, location, lang, rankedKeywordLimit)
		if err != nil {
			r.log.WithField("domain", domain).WithError(err).Warn("Ranked keywords unavailable")
			continue
		}
		if len(items) > 0 {
			result.RankedKeywords[domain] = items
		}
	}

	backlinks, err := r.api.BulkReferringDomains(ctx, domains)
	if err != nil {
		r.log.WithError(err).Warn("Backlink data unavailable")
	} else {
		result.Backlinks = backlinks
	}

	ideas, err := r.api.KeywordIdeas(ctx, r.cfg.Target.SeedKeywords, location, lang)
	if err != nil {
		r.log.WithError(err).Warn("Keyword ideas unavailable")
	} else {
		result.KeywordIdeas = ideas
	}

	result.Metadata.TotalCost = r.api.TotalCost()
	return result, r.snapshot(ctx, KeyPhase1, result)
}

// ProcessGaps computes the keyword gap set from the collected rankings.
func (r *Runner) ProcessGaps(ctx context.Context, result Result) (Result, error) {
	target := result.Metadata.TargetDomain

	targetRecords, err := keyword.LoadRanked(target, toRankedItems(result.RankedKeywords[target]))
	if err != nil {
		return result, fmt.Errorf("invalid target keyword feed: %w", err)
	}

	// Config order, not map order: it is the tie-break for equal-volume
	// candidates.
	var competitors []gap.CompetitorKeywords
	for _, comp := range r.cfg.Competitors {
		records, err := keyword.LoadRanked(comp.Domain, toRankedItems(result.RankedKeywords[comp.Domain]))
		if err != nil {
			return result, fmt.Errorf("invalid keyword feed for %s: %w", comp.Domain, err)
		}
		competitors = append(competitors, gap.CompetitorKeywords{Domain: comp.Domain, Records: records})
	}

	result.Gaps = gap.Compute(targetRecords, competitors)
	r.log.WithFields(map[string]interface{}{
		"all_gaps": len(result.Gaps.AllGaps),
		"top":      len(result.Gaps.Top100),
	}).Info("Keyword gaps processed")

	return result, nil
}

// CollectDependent runs the calls that need the gap keywords: enrichment,
// intent classification, and SERP snapshots for the top three gaps. It then
// joins the feeds and categorizes the gaps.
func (r *Runner) CollectDependent(ctx context.Context, result Result) (Result, error) {
	location := result.Metadata.Location
	lang := result.Metadata.Language

	keywords := make([]string, 0, len(result.Gaps.Top100))
	for _, g := range result.Gaps.Top100 {
		keywords = append(keywords, g.Keyword)
	}
	if len(keywords) == 0 {
		r.log.Warn("No gap keywords found, skipping dependent calls")
		return result, r.snapshot(ctx, KeyFinal, result)
	}

	enrichment, err := r.api.KeywordOverview(ctx, keywords, location, lang)
	if err != nil {
		r.log.WithError(err).Warn("Keyword enrichment unavailable")
	} else {
		result.Enrichment = enrichment
	}

	intents, err := r.api.SearchIntent(ctx, keywords, lang)
	if err != nil {
		r.log.WithError(err).Warn("Search intent unavailable")
	} else {
		result.SearchIntent = intents
	}

	for _, kw := range keywords[:min(3, len(keywords))] {
		serp, err := r.api.SERPAnalysis(ctx, kw, location, lang)
		if err != nil {
			r.log.WithField("keyword", kw).WithError(err).Warn("SERP analysis unavailable")
			continue
		}
		result.SERPAnalysis[kw] = serp
	}

	result.EnrichedGaps = gap.Enrich(result.Gaps.Top100, metricsFeed(result.Enrichment), intentFeed(result.SearchIntent))
	result.Categorized = gap.Categorize(result.EnrichedGaps)
	result.Metadata.TotalCost = r.api.TotalCost()

	return result, r.snapshot(ctx, KeyFinal, result)
}

// RunGeo audits the configured pages for JSON-LD structured data.
func (r *Runner) RunGeo(ctx context.Context, result Result) (Result, error) {
	if len(r.cfg.Audit.Pages) == 0 {
		r.log.Warn("No audit pages configured, skipping structured data audit")
		return result, nil
	}

	result.Geo = r.auditor.AuditPages(ctx, labelPages(r.cfg.Audit.Pages))
	return result, r.snapshot(ctx, KeyGeo, result.Geo)
}

// RunPerformance audits the configured pages through PageSpeed.
func (r *Runner) RunPerformance(ctx context.Context, result Result) (Result, error) {
	if len(r.cfg.Audit.Pages) == 0 {
		r.log.Warn("No audit pages configured, skipping performance audit")
		return result, nil
	}

	result.Performance = r.perf.AuditPages(ctx, r.cfg.Audit.Pages)
	return result, r.snapshot(ctx, KeyPerformance, result.Performance)
}

// Run executes the full workflow in order.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	result := r.NewResult()

	phases := []func(context.Context, Result) (Result, error){
		r.CollectSignals,
		r.CollectAPIData,
		r.ProcessGaps,
		r.CollectDependent,
		r.RunGeo,
		r.RunPerformance,
	}

	for _, phase := range phases {
		var err error
		result, err = phase(ctx, result)
		if err != nil {
			return result, err
		}
	}

	r.log.WithFields(map[string]interface{}{
		"total_cost": result.Metadata.TotalCost,
		"gaps":       len(result.Gaps.AllGaps),
	}).Info("Analysis complete")
	return result, nil
}

func (r *Runner) snapshot(ctx context.Context, key string, data interface{}) error {
	if err := r.store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// labelPages names audit pages by their URL shape: the site root becomes
// "homepage", others take their page-type heuristic.
func labelPages(pages []string) map[string]string {
	labeled := make(map[string]string, len(pages))
	for _, page := range pages {
		label := "page"
		if parsed, err := url.Parse(page); err == nil {
			if parsed.Path == "" || parsed.Path == "/" {
				label = "homepage"
			} else {
				label = sitemap.CategorizeURL(page)
			}
		}

		key := label
		for i := 2; ; i++ {
			if _, taken := labeled[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s_%d", label, i)
		}
		labeled[key] = page
	}
	return labeled
}
