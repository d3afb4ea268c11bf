package seoapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/valyala/fasthttp"

	"seogap-go/pkg/logger"
)

const (
	keywordOverviewLimit = 700
	searchIntentLimit    = 1000
	serpDepth            = 20
)

// Config carries the labs API connection settings.
type Config struct {
	Endpoint string
	Login    string
	Password string
	Timeout  time.Duration
	Pace     time.Duration
}

// Client is a sequential, paced client for the keyword research API.
// Calls share one basic-auth credential and accumulate task cost.
type Client struct {
	http     *fasthttp.Client
	endpoint string
	auth     string
	timeout  time.Duration
	pace     time.Duration
	retry    *Retry
	log      *logger.Logger

	mu        sync.Mutex
	totalCost float64
	lastCall  time.Time
}

func NewClient(cfg Config) *Client {
	credentials := base64.StdEncoding.EncodeToString([]byte(cfg.Login + ":" + cfg.Password))

	return &Client{
		http: &fasthttp.Client{
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		endpoint: cfg.Endpoint,
		auth:     "Basic " + credentials,
		timeout:  cfg.Timeout,
		pace:     cfg.Pace,
		retry:    NewRetry(3, 1*time.Second),
		log:      logger.GetLogger().WithField("component", "seoapi_client"),
	}
}

// TotalCost returns the accumulated cost of all successful calls.
func (c *Client) TotalCost() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalCost
}

// DomainRankOverview fetches organic visibility metrics for a domain.
func (c *Client) DomainRankOverview(ctx context.Context, domain, location, languageCode string) (*DomainOverview, error) {
	payload := []map[string]interface{}{{
		"target":          domain,
		"location_name":   location,
		"language_code":   languageCode,
		"ignore_synonyms": true,
	}}

	var result overviewResult
	ok, err := c.call(ctx, "dataforseo_labs/google/domain_rank_overview/live", payload, &result)
	if err != nil {
		return nil, err
	}
	if !ok || len(result.Items) == 0 {
		return nil, nil
	}
	return &result.Items[0], nil
}

// RankedKeywords fetches the domain's top ranking keywords by volume,
// restricted to first-page-adjacent positions.
func (c *Client) RankedKeywords(ctx context.Context, domain, location, languageCode string, limit int) ([]RankedKeywordItem, error) {
	payload := []map[string]interface{}{{
		"target":        domain,
		"location_name": location,
		"language_code": languageCode,
		"limit":         limit,
		"filters":       []interface{}{[]interface{}{"ranked_serp_element.serp_item.rank_group", "<=", 100}},
		"order_by":      []string{"keyword_data.keyword_info.search_volume,desc"},
	}}

	var result rankedKeywordsResult
	if _, err := c.call(ctx, "dataforseo_labs/google/ranked_keywords/live", payload, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// BulkReferringDomains fetches backlink counts for several domains at once.
func (c *Client) BulkReferringDomains(ctx context.Context, domains []string) (map[string]BacklinkSummary, error) {
	payload := []map[string]interface{}{{
		"targets": domains,
	}}

	var result backlinksResult
	if _, err := c.call(ctx, "backlinks/bulk_referring_domains/live", payload, &result); err != nil {
		return nil, err
	}

	summaries := make(map[string]BacklinkSummary, len(result.Items))
	for _, item := range result.Items {
		summaries[item.Target] = item
	}
	return summaries, nil
}

// KeywordIdeas fetches related keyword suggestions for seed keywords.
func (c *Client) KeywordIdeas(ctx context.Context, seeds []string, location, languageCode string) ([]KeywordIdea, error) {
	payload := []map[string]interface{}{{
		"keywords":      seeds,
		"location_name": location,
		"language_code": languageCode,
		"limit":         100,
	}}

	var result keywordIdeasResult
	if _, err := c.call(ctx, "dataforseo_labs/google/keyword_ideas/live", payload, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// KeywordOverview enriches keywords with volume, CPC and competition.
// The feed caps a single call at keywordOverviewLimit keywords.
func (c *Client) KeywordOverview(ctx context.Context, keywords []string, location, languageCode string) ([]OverviewItem, error) {
	if len(keywords) > keywordOverviewLimit {
		keywords = keywords[:keywordOverviewLimit]
	}

	payload := []map[string]interface{}{{
		"keywords":                 keywords,
		"location_name":            location,
		"language_code":            languageCode,
		"include_clickstream_data": true,
	}}

	var result keywordOverviewResult
	if _, err := c.call(ctx, "dataforseo_labs/google/keyword_overview/live", payload, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// SearchIntent classifies keywords by search intent.
func (c *Client) SearchIntent(ctx context.Context, keywords []string, languageCode string) ([]IntentItem, error) {
	if len(keywords) > searchIntentLimit {
		keywords = keywords[:searchIntentLimit]
	}

	payload := []map[string]interface{}{{
		"keywords":      keywords,
		"language_code": languageCode,
	}}

	var result searchIntentResult
	if _, err := c.call(ctx, "dataforseo_labs/google/search_intent/live", payload, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// SERPAnalysis fetches the live organic SERP for one keyword.
func (c *Client) SERPAnalysis(ctx context.Context, kw, location, languageCode string) ([]SERPItem, error) {
	payload := []map[string]interface{}{{
		"keyword":       kw,
		"location_name": location,
		"language_code": languageCode,
		"device":        "desktop",
		"depth":         serpDepth,
	}}

	var result serpResult
	if _, err := c.call(ctx, "serp/google/organic/live/advanced", payload, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// call POSTs a payload to one API path, honoring pacing and retry, and
// decodes the first task result into dest. It returns false when the task
// produced no result.
func (c *Client) call(ctx context.Context, path string, payload interface{}, dest interface{}) (bool, error) {
	if err := c.throttle(ctx); err != nil {
		return false, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to encode payload for %s: %w", path, err)
	}

	var env envelope
	err = c.retry.Execute(ctx, func() error {
		return c.doCall(path, body, &env)
	})
	if err != nil {
		c.log.WithField("path", path).WithError(err).Error("API call failed")
		return false, err
	}

	if len(env.Tasks) == 0 {
		return false, fmt.Errorf("%s returned no tasks", path)
	}
	t := env.Tasks[0]

	c.mu.Lock()
	c.totalCost += t.Cost
	c.mu.Unlock()

	if len(t.Result) == 0 {
		c.log.WithField("path", path).Debug("API call returned empty result")
		return false, nil
	}
	if err := json.Unmarshal(t.Result[0], dest); err != nil {
		return false, fmt.Errorf("failed to decode %s result: %w", path, err)
	}
	return true, nil
}

func (c *Client) doCall(path string, body []byte, env *envelope) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/%s", c.endpoint, path))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", c.auth)
	req.SetBody(body)

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if env.StatusCode != statusOK {
		return fmt.Errorf("API error %d: %s", env.StatusCode, env.StatusMessage)
	}
	return nil
}

// throttle enforces the fixed inter-call pace. The first call goes out
// immediately.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	wait := time.Duration(0)
	if !c.lastCall.IsZero() {
		if elapsed := time.Since(c.lastCall); elapsed < c.pace {
			wait = c.pace - elapsed
		}
	}
	c.lastCall = time.Now().Add(wait)
	c.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
