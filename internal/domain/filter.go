package domain

import "strings"

// Visible returns the links of the snapshot that match both the active
// category and the free-text query, preserving insertion order.
//
// A link matches the category predicate when activeCategory is the
// "all" pseudo-category, or when its category field is an exact
// identifier match AND still resolves to an existing category. A link
// whose category was deleted therefore never appears under a specific
// category filter, its own former one included, but always appears
// under "all".
//
// The text predicate is a case-insensitive substring match against
// title, URL and description. An empty query matches everything; an
// absent description never matches.
//
// Visible is pure: no state, no side effects, safe on every keystroke.
func Visible(links []Link, categories []Category, activeCategory, query string) []Link {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Link, 0, len(links))
	for _, link := range links {
		if !matchesCategory(link, activeCategory, known) {
			continue
		}
		if !matchesQuery(link, q) {
			continue
		}
		out = append(out, link)
	}
	return out
}

func matchesCategory(link Link, activeCategory string, known map[string]bool) bool {
	if activeCategory == CategoryAll {
		return true
	}
	return link.Category == activeCategory && known[link.Category]
}

func matchesQuery(link Link, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(link.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(link.URL), q) {
		return true
	}
	return link.Description != "" && strings.Contains(strings.ToLower(link.Description), q)
}
