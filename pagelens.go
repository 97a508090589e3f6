// Package pagelens turns raw web pages into a normalized, bounded content
// model (title, description, hero, navigation, sections, images) that a
// front-end can render without parsing HTML itself. Extraction is heuristic
// and best-effort: it guarantees boundedness, determinism, and graceful
// degradation on malformed markup, never semantic correctness.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gin/).
package pagelens
