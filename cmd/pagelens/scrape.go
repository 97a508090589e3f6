package main

import (
	"encoding/json"
	"fmt"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	scraper := &scrape.Scraper{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Limiter:     scrape.NewDomainLimiter(c.RPS),
		Concurrency: c.Concurrency,
	}

	var failed int
	progress := func(p scrape.Progress) {
		if p.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", p.URL, pagelens.ErrorMessage(p.Err))
		}
	}

	docs, err := scraper.ScrapeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(c.URLs))
	}
	return nil
}
