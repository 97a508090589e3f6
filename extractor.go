package pagelens

// Extractor converts raw page markup into a normalized Document.
//
// Extraction is a pure function of its inputs: it allocates no shared state,
// is safely reentrant, and produces byte-identical output for identical
// input. Missing elements and malformed nesting are never errors; they
// resolve to the documented absent value for the affected field. The only
// failures are ETOOLARGE (markup exceeds the size ceiling) and EUNPARSABLE
// (markup is not decodable text), and neither produces a partial Document.
type Extractor interface {
	// Extract parses rawHTML and applies the extraction heuristics.
	// The source identifier is copied verbatim into Document.Source.
	Extract(source, rawHTML string) (*Document, error)
}
