package models

import "strings"

// MatchesCategory reports whether an item's category passes the selected
// filter. "All" (or an empty selection) matches everything; otherwise
// both sides are compared in normalized form.
func MatchesCategory(itemCategory, selected string) bool {
	if selected == "" || selected == CategoryAll {
		return true
	}
	return NormalizeCategory(itemCategory) == NormalizeCategory(selected)
}

// MatchesQuery reports whether any of the given text fields contains the
// query, case-insensitively. A blank query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
