package source

import (
	"strings"
	"unicode"
)

// Slugify normalizes a camera name into the directory-safe identifier
// used for its source files: lowercase, runs of anything that isn't a
// letter or digit collapsed to a single underscore.
func Slugify(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	b.Grow(len(raw))
	lastUnderscore := false
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
