package social

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Client fetches homepages for signal scraping.
type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().
			SetTimeout(15 * time.Second).
			SetHeader("User-Agent", browserUA),
	}
}

// FetchHomepage downloads https://{domain} and parses it into a document.
func (c *Client) FetchHomepage(ctx context.Context, domain string) (*goquery.Document, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("https://%s", strings.TrimSuffix(domain, "/")))
	if err != nil {
		return nil, fmt.Errorf("homepage fetch failed for %s: %w", domain, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("homepage fetch for %s returned HTTP %d", domain, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("homepage parse failed for %s: %w", domain, err)
	}
	return doc, nil
}
