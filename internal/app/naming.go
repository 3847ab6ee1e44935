package app

import (
	"regexp"
	"strings"
)

var nonSlugChar = regexp.MustCompile(`[^0-9A-Za-z']`)

// displayName derives the Lutris game name from a ROM base name. Everything
// from the first dot is dropped, so "Game v1.1.zip" becomes "Game v1".
func displayName(base string, stripTokens []string) string {
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	for _, token := range stripTokens {
		if token == "" {
			continue
		}
		base = strings.ReplaceAll(base, token, "")
	}
	// Fields splits on any Unicode space, so NBSP and U+3000 collapse too.
	return strings.Join(strings.Fields(base), " ")
}

// slugify maps a display name to lowercase ASCII words joined by dashes.
// Apostrophes are dropped rather than split on: "Link's" -> "links".
func slugify(name string) string {
	s := nonSlugChar.ReplaceAllString(name, " ")
	s = strings.ReplaceAll(s, "'", "")
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
