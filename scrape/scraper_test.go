package scrape_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/mock"
	"github.com/pagelens/pagelens/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_ScrapeAll(t *testing.T) {
	t.Parallel()

	t.Run("returns documents in input order", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html>" + url + "</html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(source, _ string) (*pagelens.Document, error) {
					return &pagelens.Document{Source: source}, nil
				},
			},
			Concurrency: 3,
		}

		urls := []string{"https://a.test/", "https://b.test/", "https://c.test/"}
		docs, err := s.ScrapeAll(context.Background(), urls, nil)

		require.NoError(t, err)
		require.Len(t, docs, 3)
		for i, doc := range docs {
			assert.Equal(t, urls[i], doc.Source)
		}
	})

	t.Run("skips failed URLs and reports them through progress", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://bad.test/" {
						return "", pagelens.Errorf(pagelens.EUNAVAILABLE, "failed to fetch %s", url)
					}
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(source, _ string) (*pagelens.Document, error) {
					return &pagelens.Document{Source: source}, nil
				},
			},
		}

		var mu sync.Mutex
		var failed []string
		progress := func(p scrape.Progress) {
			if p.Err != nil {
				mu.Lock()
				failed = append(failed, p.URL)
				mu.Unlock()
			}
		}

		urls := []string{"https://ok.test/", "https://bad.test/", "https://also-ok.test/"}
		docs, err := s.ScrapeAll(context.Background(), urls, progress)

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "https://ok.test/", docs[0].Source)
		assert.Equal(t, "https://also-ok.test/", docs[1].Source)
		assert.Equal(t, []string{"https://bad.test/"}, failed)
	})

	t.Run("bounds in-flight fetches to the configured concurrency", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int64
		release := make(chan struct{})

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					n := inFlight.Add(1)
					for {
						p := peak.Load()
						if n <= p || peak.CompareAndSwap(p, n) {
							break
						}
					}
					<-release
					inFlight.Add(-1)
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(source, _ string) (*pagelens.Document, error) {
					return &pagelens.Document{Source: source}, nil
				},
			},
			Concurrency: 2,
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = s.ScrapeAll(context.Background(), []string{"a", "b", "c", "d", "e"}, nil)
		}()

		close(release)
		<-done

		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("waits on the rate limiter keyed by domain", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var domains []string

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(source, _ string) (*pagelens.Document, error) {
					return &pagelens.Document{Source: source}, nil
				},
			},
			Limiter: &mock.DomainLimiter{
				WaitFn: func(_ context.Context, domain string) error {
					mu.Lock()
					domains = append(domains, domain)
					mu.Unlock()
					return nil
				},
			},
			Concurrency: 1,
		}

		_, err := s.ScrapeAll(context.Background(), []string{"https://a.test/x", "https://b.test/y"}, nil)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.test", "b.test"}, domains)
	})

	t.Run("returns the context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, _ string) (string, error) {
					cancel()
					return "", ctx.Err()
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(source, _ string) (*pagelens.Document, error) {
					return &pagelens.Document{Source: source}, nil
				},
			},
		}

		_, err := s.ScrapeAll(ctx, []string{"https://a.test/"}, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
