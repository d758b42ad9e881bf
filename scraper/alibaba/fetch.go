package alibaba

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"alibaba-rfq-scraper/utils"
)

const staticTimeout = 30 * time.Second

// StaticFetcher returns the raw HTML of a page using a single plain request.
type StaticFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// DynamicFetcher returns the HTML of a page after a browser rendered it.
type DynamicFetcher interface {
	Render(ctx context.Context, pageURL string) (string, error)
}

// HTTPFetcher is the StaticFetcher backed by a resty client with
// browser-like headers.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates an HTTPFetcher with the fixed 30s timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return newHTTPFetcher(staticTimeout)
}

func newHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language":           "en-US,en;q=0.5",
			"Connection":                "keep-alive",
			"Upgrade-Insecure-Requests": "1",
		})
	return &HTTPFetcher{client: client}
}

// Fetch issues one GET for pageURL with a random user agent. Transport
// errors, timeouts and non-2xx statuses are all reported as errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", utils.RandomUserAgent()).
		Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("static fetch: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("static fetch: unexpected status %d", res.StatusCode())
	}
	return string(res.Body()), nil
}
