package domain

import "strings"

// Link represents a bookmark entry in the catalog.
type Link struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier.
	// Assigned once at creation, never reassigned.
	ID string `json:"id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is the display text. Always non-empty.
	Title string `json:"title"`

	// URL is the absolute address of the bookmark.
	// Example: https://github.com
	URL string `json:"url"`

	// Category references a Category by ID. The reference may dangle
	// after its category is deleted; such links stay visible only
	// under the "all" pseudo-category.
	Category string `json:"category"`

	// Icon is an optional short glyph. Empty means the presentation
	// layer falls back to a generated icon.
	Icon string `json:"icon,omitempty"`

	// Description is optional free text, searchable.
	Description string `json:"description,omitempty"`

	// ─────────────────────────────
	// Learning & persistence
	// ─────────────────────────────

	// Visits counts user-initiated visits. Starts at 0.
	Visits int64 `json:"visits"`
}

// LinkDraft is the caller-supplied part of a new link.
// ID and Visits are assigned by the catalog store.
type LinkDraft struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

// Category is a named grouping of links.
type Category struct {
	// ID is the canonical unique identifier, assigned at creation.
	ID string `json:"id"`

	// Name is the display text. User-editable, need not be unique.
	Name string `json:"name"`
}

// CategoryAll is the pseudo-category that matches every link,
// including links whose category reference dangles.
const CategoryAll = "all"

// NormalizeURL prepends "https://" when the address carries no
// recognized scheme prefix. Matching is case-insensitive.
func NormalizeURL(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}
