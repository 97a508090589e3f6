// Package goquery implements the content extraction heuristics on top of
// the PuerkitoBio/goquery HTML parser. It is the only package that looks at
// markup; everything downstream consumes the normalized pagelens.Document.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
	"golang.org/x/net/html"
)

// DefaultMaxInputSize is the default size ceiling for raw markup, in bytes.
// Parsing cost is bounded only by input size, so oversized input is refused
// before parsing starts.
const DefaultMaxInputSize = 5 << 20

// DefaultAboutBody is used for the synthetic "About" section when a page
// yields no sections and no description.
const DefaultAboutBody = "More information about this site is not available."

// Ensure Extractor implements pagelens.Extractor at compile time.
var _ pagelens.Extractor = (*Extractor)(nil)

// Extractor derives a normalized Document from raw HTML. The heuristics are
// shallow and order-dependent on purpose: they walk the parsed tree in
// document order with explicit stop conditions rather than inferring layout.
type Extractor struct {
	maxInputSize int
	aboutBody    string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxInputSize sets the raw markup size ceiling in bytes.
// Defaults to DefaultMaxInputSize if not specified.
func WithMaxInputSize(n int) Option {
	return func(e *Extractor) {
		e.maxInputSize = n
	}
}

// WithAboutBody sets the fallback body for the synthetic "About" section.
func WithAboutBody(s string) Option {
	return func(e *Extractor) {
		e.aboutBody = s
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		maxInputSize: DefaultMaxInputSize,
		aboutBody:    DefaultAboutBody,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and applies the extraction heuristics.
// It returns ETOOLARGE when the input exceeds the size ceiling and
// EUNPARSABLE when the input is not decodable text. Malformed markup is
// never an error; missing elements resolve to absent fields.
func (e *Extractor) Extract(source, rawHTML string) (*pagelens.Document, error) {
	if len(rawHTML) > e.maxInputSize {
		return nil, pagelens.Errorf(pagelens.ETOOLARGE,
			"input is %d bytes, ceiling is %d", len(rawHTML), e.maxInputSize)
	}
	if !utf8.ValidString(rawHTML) || strings.ContainsRune(rawHTML, 0) {
		return nil, pagelens.Errorf(pagelens.EUNPARSABLE, "input is not decodable text")
	}

	// goquery tolerates arbitrarily malformed markup; a parse error here
	// means the reader failed, which cannot happen for an in-memory string,
	// but the failure mode is still mapped for completeness.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNPARSABLE, "parse markup: %v", err)
	}

	out := &pagelens.Document{
		Source:   source,
		Nav:      []pagelens.NavLink{},
		Sections: []pagelens.Section{},
		Images:   []pagelens.Image{},
	}

	out.Title = elementText(doc.Find("title").First())
	out.Description = description(doc)
	out.Hero = hero(doc, out.Title)
	out.Nav = navLinks(doc)
	out.Sections = sections(doc)
	out.Images = images(doc)

	// The consuming renderer depends on at least one section being present.
	if len(out.Sections) == 0 {
		body := out.Description
		if body == "" {
			body = e.aboutBody
		}
		out.Sections = []pagelens.Section{{Title: "About", Body: body}}
	}

	return out, nil
}

// description returns the trimmed content of <meta name="description">,
// falling back to <meta property="og:description"> when no such element
// exists. The fallback triggers on element absence, not attribute absence.
func description(doc *goquery.Document) string {
	sel := doc.Find(`meta[name="description"]`).First()
	if sel.Length() == 0 {
		sel = doc.Find(`meta[property="og:description"]`).First()
	}
	return strings.TrimSpace(sel.AttrOr("content", ""))
}

// hero locates the page's lead heading and its nearest following block.
// The subheading association is intentionally shallow: the first p, h2, or
// div encountered in document order after the h1, with no layout awareness.
func hero(doc *goquery.Document, title string) pagelens.Hero {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return pagelens.Hero{Heading: title}
	}

	h := pagelens.Hero{Heading: elementText(h1)}
	for n := nextInDocument(h1.Nodes[0]); n != nil; n = nextInDocument(n) {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "p", "h2", "div":
			h.Subheading = truncate(nodeText(n), pagelens.MaxSubheadingLen)
			return h
		}
	}
	return h
}

// navLinks collects navigation entries. With a <nav> present, anchors inside
// it need a non-empty href and label, and same-page jump markers are dropped:
// anchors whose label or href starts with "#". Without a <nav>, the first
// anchors anywhere with an href attribute and a non-empty label are used,
// with no jump-marker filter.
func navLinks(doc *goquery.Document) []pagelens.NavLink {
	links := []pagelens.NavLink{}

	nav := doc.Find("nav").First()
	if nav.Length() > 0 {
		nav.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			label := elementText(a)
			href := strings.TrimSpace(a.AttrOr("href", ""))
			if label == "" || href == "" ||
				strings.HasPrefix(label, "#") || strings.HasPrefix(href, "#") {
				return
			}
			links = append(links, pagelens.NavLink{Label: label, Href: href})
		})
	} else {
		doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			label := elementText(a)
			if label == "" {
				return true
			}
			links = append(links, pagelens.NavLink{
				Label: label,
				Href:  strings.TrimSpace(a.AttrOr("href", "")),
			})
			return len(links) < pagelens.MaxNavLinks
		})
	}

	if len(links) > pagelens.MaxNavLinks {
		links = links[:pagelens.MaxNavLinks]
	}
	return links
}

// sections groups body content under second-level headings. Each h2 starts a
// section; its following element siblings are walked (no descent) until the
// next h2 sibling or the end of the chain, and the text of p, h3, ul, ol,
// and div siblings is joined with newlines.
func sections(doc *goquery.Document) []pagelens.Section {
	out := []pagelens.Section{}

	doc.Find("h2").Each(func(_ int, h2 *goquery.Selection) {
		var parts []string
		for sib := h2.Nodes[0].NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type != html.ElementNode {
				continue
			}
			if sib.Data == "h2" {
				break
			}
			switch sib.Data {
			case "p", "h3", "ul", "ol", "div":
				if text := nodeText(sib); text != "" {
					parts = append(parts, text)
				}
			}
		}
		out = append(out, pagelens.Section{
			Title: elementText(h2),
			Body:  truncate(strings.Join(parts, "\n"), pagelens.MaxSectionBodyLen),
		})
	})

	if len(out) > pagelens.MaxSections {
		out = out[:pagelens.MaxSections]
	}
	return out
}

// images collects every img with a non-empty src, in document order.
// Alt is always populated, defaulting to the empty string.
func images(doc *goquery.Document) []pagelens.Image {
	out := []pagelens.Image{}

	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := strings.TrimSpace(img.AttrOr("src", ""))
		if src == "" {
			return true
		}
		out = append(out, pagelens.Image{
			Src: src,
			Alt: strings.TrimSpace(img.AttrOr("alt", "")),
		})
		return len(out) < pagelens.MaxImages
	})

	return out
}

// elementText returns the visible text of the selection's first node,
// trimmed and whitespace-normalized. Empty selections yield "".
func elementText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return nodeText(sel.Nodes[0])
}

// nodeText collects the text content of a node's subtree: each text node is
// trimmed and non-empty fragments are joined with single spaces.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// nextInDocument returns the pre-order successor of n: first child, else
// next sibling, else the nearest ancestor's next sibling. This mirrors
// document order as a reader sees it, descendants included.
func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// truncate cuts s to at most n characters (runes, not bytes).
// The cap is hard; no word-boundary awareness.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
