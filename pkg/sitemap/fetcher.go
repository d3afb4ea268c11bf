package sitemap

import (
	"context"
	"fmt"
	"strings"

	"seogap-go/pkg/logger"
)

const maxChildSitemaps = 10

// Fetcher discovers and walks a domain's sitemaps.
type Fetcher struct {
	client *HTTPClient
	log    *logger.Logger
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: NewHTTPClient(),
		log:    logger.GetLogger().WithField("component", "sitemap_fetcher"),
	}
}

// candidateURLs lists the well-known sitemap locations probed in order.
func candidateURLs(domain string) []string {
	domain = strings.TrimSuffix(strings.TrimSpace(domain), "/")
	return []string{
		fmt.Sprintf("https://%s/sitemap-index.xml", domain),
		fmt.Sprintf("https://%s/sitemap.xml", domain),
		fmt.Sprintf("https://%s/sitemap_index.xml", domain),
		fmt.Sprintf("https://www.%s/sitemap.xml", domain),
		fmt.Sprintf("https://www.%s/sitemap-index.xml", domain),
	}
}

// Fetch probes the domain's well-known sitemap locations and returns the
// entries of the first one that parses. Index documents are expanded by
// fetching child sitemaps sequentially, capped at maxChildSitemaps.
func (f *Fetcher) Fetch(ctx context.Context, domain string) ([]Entry, string, error) {
	var lastErr error

	for _, candidate := range candidateURLs(domain) {
		data, err := f.client.Download(ctx, candidate)
		if err != nil {
			f.log.WithField("url", candidate).WithError(err).Debug("Sitemap probe failed")
			lastErr = err
			continue
		}

		entries, children, err := parseDocument(data)
		if err != nil {
			f.log.WithField("url", candidate).WithError(err).Debug("Sitemap parse failed")
			lastErr = err
			continue
		}

		if len(children) > 0 {
			entries = f.expandIndex(ctx, children)
		}

		f.log.WithFields(map[string]interface{}{
			"url":     candidate,
			"entries": len(entries),
		}).Info("Sitemap fetched")
		return entries, candidate, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no sitemap found for %s", domain)
	}
	return nil, "", fmt.Errorf("sitemap discovery failed for %s: %w", domain, lastErr)
}

func (f *Fetcher) expandIndex(ctx context.Context, children []string) []Entry {
	if len(children) > maxChildSitemaps {
		f.log.WithFields(map[string]interface{}{
			"total": len(children),
			"cap":   maxChildSitemaps,
		}).Warn("Sitemap index truncated")
		children = children[:maxChildSitemaps]
	}

	var entries []Entry
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			break
		}

		data, err := f.client.Download(ctx, child)
		if err != nil {
			f.log.WithField("url", child).WithError(err).Warn("Child sitemap fetch failed")
			continue
		}

		childEntries, nested, err := parseDocument(data)
		if err != nil {
			f.log.WithField("url", child).WithError(err).Warn("Child sitemap parse failed")
			continue
		}
		if len(nested) > 0 {
			// Nested indexes are not walked further.
			f.log.WithField("url", child).Debug("Skipping nested sitemap index")
			continue
		}
		entries = append(entries, childEntries...)
	}
	return entries
}
