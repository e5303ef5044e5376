package domain

import "strings"

// Quote is a piece of saveable content. Two quotes are the same logical
// item when their normalized identity keys match, regardless of casing or
// stray whitespace.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Key returns the dedup identity for the quote.
func (q Quote) Key() string {
	return normalizeText(q.Content) + "::" + normalizeText(q.Author)
}

// Matches reports whether the quote's content or author contains the query,
// case-insensitively. An empty query matches everything.
func (q Quote) Matches(query string) bool {
	needle := normalizeText(query)
	if needle == "" {
		return true
	}
	return strings.Contains(normalizeText(q.Content), needle) ||
		strings.Contains(normalizeText(q.Author), needle)
}

// normalizeText trims, case-folds and collapses inner whitespace.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
