// Package scrape provides batch scraping orchestration. It coordinates
// fetching and extraction across multiple URLs with bounded concurrency and
// optional per-domain rate limiting.
package scrape

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/pagelens/pagelens"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker limit used when none is configured.
const DefaultConcurrency = 4

// Progress reports progress during a batch scrape.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as URLs are processed.
type ProgressFunc func(Progress)

// Scraper fetches and extracts a set of pages concurrently.
// Each page is processed independently; a failed URL is reported through the
// progress callback and skipped, it never aborts the batch.
type Scraper struct {
	Fetcher     pagelens.Fetcher
	Extractor   pagelens.Extractor
	Limiter     pagelens.DomainLimiter // optional
	Concurrency int
}

// result holds the outcome of processing a single URL.
type result struct {
	position int
	url      string
	doc      *pagelens.Document
	err      error
}

// ScrapeAll fetches and extracts every URL, returning documents in input
// order with failed URLs omitted. The progress callback, if provided,
// receives one event per URL as processing completes.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*pagelens.Document, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	resultCh := make(chan result, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- s.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]result, total)
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r

		if progress != nil {
			progress(Progress{
				URL:       r.url,
				Completed: int(completed.Load()),
				Total:     total,
				Err:       r.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]*pagelens.Document, 0, total)
	for _, r := range results {
		if r.err != nil {
			continue
		}
		docs = append(docs, r.doc)
	}
	return docs, nil
}

// processURL fetches and extracts a single URL.
func (s *Scraper) processURL(ctx context.Context, position int, rawURL string) result {
	r := result{position: position, url: rawURL}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, domainOf(rawURL)); err != nil {
			r.err = err
			return r
		}
	}

	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		r.err = err
		return r
	}

	r.doc, r.err = s.Extractor.Extract(rawURL, html)
	return r
}

// domainOf extracts the host from a URL for rate limiting purposes.
// Unparsable URLs share a single bucket keyed by the raw string.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
