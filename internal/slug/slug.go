// Package slug derives filesystem-safe identifiers from entry titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is substituted by callers when Make returns an empty slug.
const Fallback = "adr"

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases title, folds accented letters to ASCII, and joins the
// remaining alphanumeric runs with single hyphens. Characters without an
// ASCII decomposition are dropped. The result may be empty.
func Make(title string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isNonASCII)))
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = asciiOnly(norm.NFKD.String(title))
	}
	s := nonAlnumRe.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(s, "-")
}

// OrFallback returns Make(title), or Fallback when that is empty.
func OrFallback(title string) string {
	if s := Make(title); s != "" {
		return s
	}
	return Fallback
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if isNonASCII(r) {
			return -1
		}
		return r
	}, s)
}
