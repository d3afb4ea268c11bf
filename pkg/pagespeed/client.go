package pagespeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"

	"seogap-go/pkg/logger"
)

// Strategies are the device profiles audited per page.
var Strategies = []string{"mobile", "desktop"}

// Result is one page+device audit outcome. API failures are recorded in
// Error with zeroed metrics rather than aborting the run.
type Result struct {
	URL              string  `json:"url"`
	Device           string  `json:"device"`
	PerformanceScore float64 `json:"performance_score"`
	LCP              float64 `json:"lcp"`
	FID              float64 `json:"fid"`
	CLS              float64 `json:"cls"`
	Error            string  `json:"error,omitempty"`
}

type apiResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	LighthouseResult struct {
		Categories struct {
			Performance struct {
				Score *float64 `json:"score"`
			} `json:"performance"`
		} `json:"categories"`
		Audits map[string]struct {
			NumericValue float64 `json:"numericValue"`
		} `json:"audits"`
	} `json:"lighthouseResult"`
}

// Client audits pages through the PageSpeed Insights v5 API.
type Client struct {
	http     *resty.Client
	endpoint string
	apiKey   string
	pace     time.Duration
	log      *logger.Logger
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		http:     resty.New().SetTimeout(60 * time.Second),
		endpoint: endpoint,
		apiKey:   apiKey,
		pace:     3 * time.Second,
		log:      logger.GetLogger().WithField("component", "pagespeed_client"),
	}
}

// AuditPages runs mobile and desktop audits for each page sequentially.
// Every page+device pair produces a Result, failed or not.
func (c *Client) AuditPages(ctx context.Context, pages []string) []Result {
	results := []Result{}

	first := true
	for _, page := range pages {
		for _, strategy := range Strategies {
			if !first {
				select {
				case <-ctx.Done():
					return results
				case <-time.After(c.pace):
				}
			}
			first = false

			result := c.audit(ctx, page, strategy)
			if result.Error != "" {
				c.log.WithFields(map[string]interface{}{
					"url":    page,
					"device": strategy,
				}).Warn("PageSpeed audit failed: " + result.Error)
			} else {
				c.log.WithFields(map[string]interface{}{
					"url":    page,
					"device": strategy,
					"score":  result.PerformanceScore,
				}).Info("PageSpeed audit completed")
			}
			results = append(results, result)
		}
	}

	return results
}

func (c *Client) audit(ctx context.Context, page, strategy string) Result {
	result := Result{URL: page, Device: strategy}

	params := map[string]string{
		"url":      page,
		"strategy": strategy,
		"category": "performance",
	}
	if c.apiKey != "" {
		params["key"] = c.apiKey
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(c.endpoint)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	var parsed apiResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		result.Error = "failed to decode response: " + err.Error()
		return result
	}
	if parsed.Error != nil {
		result.Error = parsed.Error.Message
		return result
	}

	if score := parsed.LighthouseResult.Categories.Performance.Score; score != nil {
		result.PerformanceScore = *score * 100
	}

	audits := parsed.LighthouseResult.Audits
	result.LCP = audits["largest-contentful-paint"].NumericValue / 1000
	result.FID = audits["max-potential-fid"].NumericValue
	result.CLS = audits["cumulative-layout-shift"].NumericValue

	return result
}
