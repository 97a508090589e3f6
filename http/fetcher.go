// Package http provides an HTTP-based implementation of pagelens.Fetcher.
// It retrieves already-rendered markup; pages requiring JavaScript execution
// are out of scope.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/goquery"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pagelens.Fetcher at compile time.
var _ pagelens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Transport failures and non-200 responses surface as EUNAVAILABLE so the
// caller can distinguish them from extraction failures.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	maxBody int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize sets how many response bytes are read before giving up.
// Defaults to one byte past the extractor's input ceiling so oversized pages
// are rejected by the extractor as ETOOLARGE rather than silently truncated.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		maxBody: goquery.DefaultMaxInputSize + 1,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagelens.Errorf(pagelens.EUNAVAILABLE, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pagelens.Errorf(pagelens.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", pagelens.Errorf(pagelens.EUNAVAILABLE, "failed to read %s: %v", url, err)
	}

	return string(body), nil
}
