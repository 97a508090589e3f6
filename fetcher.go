package pagelens

import "context"

// Fetcher retrieves raw HTML from URLs.
// Fetching is the upstream collaborator of the extraction core: it owns the
// timeout and surfaces transport failures as EUNAVAILABLE errors so callers
// can distinguish them from extraction failures.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its body as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DomainLimiter throttles outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
