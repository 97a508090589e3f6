package pagelens

// Output bounds. Every sequence in a Document is capped regardless of input
// size, and section bodies and hero subheadings are truncated to a fixed
// number of characters.
const (
	MaxNavLinks       = 8
	MaxSections       = 6
	MaxImages         = 10
	MaxSectionBodyLen = 1200
	MaxSubheadingLen  = 300
)

// Document is the normalized content model extracted from a single web page.
//
// Optional text fields use the empty string to mean "the heuristic found
// nothing"; because every populated field is trimmed and non-empty, the
// empty string never collides with a real value. A Document is immutable
// once constructed and is not cached or shared between extractions.
type Document struct {
	// Source is the opaque origin identifier, typically the page URL.
	// It is never validated or dereferenced.
	Source string `json:"source"`

	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Hero        Hero      `json:"hero"`
	Nav         []NavLink `json:"nav"`
	Sections    []Section `json:"sections"`
	Images      []Image   `json:"images"`
}

// Hero holds the page's lead heading and an optional subheading associated
// with it by a shallow nearest-following-block heuristic.
type Hero struct {
	Heading    string `json:"heading,omitempty"`
	Subheading string `json:"subheading,omitempty"`
}

// NavLink is a single navigation entry.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Section is a titled slice of body content grouped under a second-level
// heading.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Image is a single page image reference. Alt is always present, possibly
// empty, whenever Src is.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}
