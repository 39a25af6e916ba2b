// Package normalize canonicalizes policy option strings before rule
// matching. The same logical option arrives in different renderings
// depending on the input surface ("No" vs "❌ No - Not demonstrated"), so
// every categorical value is cleaned here before any rule sees it.
package normalize

import (
	"regexp"
	"strings"
)

var patterns []*regexp.Regexp

func init() {
	raw := []string{
		// Emoji and pictographs used as option decorations
		`[\x{1F000}-\x{1FAFF}]`,
		// Miscellaneous symbols and dingbats (⚠ ✅ ❌ ⚖ …)
		`[\x{2600}-\x{27BF}]`,
		// Variation selectors left behind by emoji sequences
		`[\x{FE00}-\x{FE0F}]`,
		// Zero-width joiners
		`\x{200D}`,
	}
	for _, r := range raw {
		patterns = append(patterns, regexp.MustCompile(r))
	}
}

// Clean strips decorations from an option string: emoji prefixes, en/em
// dashes folded to hyphens, and runs of whitespace collapsed.
func Clean(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, "")
	}
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Fold returns the cleaned, lowercased form used for rule matching.
func Fold(s string) string {
	return strings.ToLower(Clean(s))
}
