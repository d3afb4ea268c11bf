package sitemap

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// HTTPClient wraps a shared fasthttp client with browser-like headers.
// Some sites serve sitemaps only to requests that look like a browser.
type HTTPClient struct {
	client    *fasthttp.Client
	timeout   time.Duration
	userAgent string
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &fasthttp.Client{
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		timeout:   15 * time.Second,
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// Download fetches a URL and returns the body, transparently un-gzipping
// .gz sitemaps and gzip-encoded responses.
func (h *HTTPClient) Download(ctx context.Context, targetURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(targetURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	h.setRequestHeaders(req, targetURL)

	if err := h.client.DoTimeout(req, resp, h.timeout); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode())
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	if h.isGzipped(targetURL, resp) {
		gz, err := gzip.NewReader(strings.NewReader(string(body)))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}

	return body, nil
}

func (h *HTTPClient) setRequestHeaders(req *fasthttp.Request, targetURL string) {
	req.Header.SetUserAgent(h.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Connection", "keep-alive")

	if parsed, err := url.Parse(targetURL); err == nil {
		req.Header.Set("Referer", fmt.Sprintf("%s://%s/", parsed.Scheme, parsed.Host))
	}
}

func (h *HTTPClient) isGzipped(targetURL string, resp *fasthttp.Response) bool {
	return strings.HasSuffix(strings.ToLower(targetURL), ".gz") ||
		string(resp.Header.Peek("Content-Encoding")) == "gzip"
}
