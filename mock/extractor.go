package mock

import "github.com/pagelens/pagelens"

var _ pagelens.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagelens.Extractor.
type Extractor struct {
	ExtractFn func(source, html string) (*pagelens.Document, error)
}

func (e *Extractor) Extract(source, html string) (*pagelens.Document, error) {
	return e.ExtractFn(source, html)
}
