// Package parser recovers naming conventions from entry headings and filenames.
package parser

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	headingLineRe = regexp.MustCompile(`^(?P<hashes>#+)(?P<space>\s*)(?P<body>.*)$`)
	headingBodyRe = regexp.MustCompile(`^(?P<prefix>\d{4}(?:-\d{2}){1,2}|\d+)(?P<sep>\s*[:.]\s+)(?P<title>.*)$`)
	datePrefixRe  = regexp.MustCompile(`^(?P<prefix>\d{4}(?:-\d{2}){1,2})-(?P<rest>.+)$`)
	numPrefixRe   = regexp.MustCompile(`^(?P<prefix>\d+)-(?P<rest>.+)$`)
)

// Heading is the parsed form of an entry's first heading line.
// Prefix and Separator are both empty when the heading carries no prefix.
type Heading struct {
	Hashes    string `json:"hashes"`
	Space     string `json:"space"`
	Prefix    string `json:"prefix,omitempty"`
	Separator string `json:"separator,omitempty"`
	Title     string `json:"title"`
}

// HasPrefix reports whether the heading carries a number or date prefix.
func (h Heading) HasPrefix() bool {
	return h.Prefix != ""
}

// Line renders the heading with its current title and prefix.
func (h Heading) Line() string {
	return h.WithTitle(h.Title, h.Prefix, h.Separator)
}

// WithTitle renders the heading with title and prefix, keeping the original
// marker and spacing. When a prefix is rendered and the heading had no
// separator of its own, defaultSep is used, then ": ".
func (h Heading) WithTitle(title, prefix, defaultSep string) string {
	hashes := h.Hashes
	if hashes == "" {
		hashes = "#"
	}
	space := h.Space
	if space == "" {
		space = " "
	}
	if prefix == "" {
		return hashes + space + title
	}
	sep := h.Separator
	if sep == "" {
		sep = defaultSep
	}
	if sep == "" {
		sep = ": "
	}
	return hashes + space + prefix + sep + title
}

// ParseHeading splits a heading line into marker, spacing, optional prefix
// and separator, and title. Lines that do not start with '#' are returned
// as a level-one heading whose title is the trimmed line.
func ParseHeading(line string) Heading {
	line = strings.TrimSuffix(line, "\r")
	m := headingLineRe.FindStringSubmatch(line)
	if m == nil {
		return Heading{Hashes: "#", Space: " ", Title: strings.TrimSpace(line)}
	}
	h := Heading{
		Hashes: m[headingLineRe.SubexpIndex("hashes")],
		Space:  m[headingLineRe.SubexpIndex("space")],
	}
	if h.Space == "" {
		h.Space = " "
	}
	body := strings.TrimSpace(m[headingLineRe.SubexpIndex("body")])
	if pm := headingBodyRe.FindStringSubmatch(body); pm != nil {
		h.Prefix = pm[headingBodyRe.SubexpIndex("prefix")]
		h.Separator = pm[headingBodyRe.SubexpIndex("sep")]
		h.Title = strings.TrimSpace(pm[headingBodyRe.SubexpIndex("title")])
		return h
	}
	h.Title = body
	return h
}

// IsHeadingLine reports whether line starts with '#' after leading whitespace.
func IsHeadingLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#")
}

// FindHeading returns the index and parsed form of the first heading line.
// ok is false when no line is a heading.
func FindHeading(lines []string) (idx int, h Heading, ok bool) {
	for i, line := range lines {
		if IsHeadingLine(line) {
			return i, ParseHeading(line), true
		}
	}
	return -1, Heading{}, false
}

// GetHeading parses the first heading of content, if any.
func GetHeading(content string) (Heading, bool) {
	_, h, ok := FindHeading(strings.Split(content, "\n"))
	return h, ok
}

// SplitName decomposes a filename into its optional number or date prefix
// and the slug that follows it. The extension is ignored. Names without a
// recognised prefix return an empty prefix and the whole stem as slug.
func SplitName(name string) (prefix, slug string) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if m := datePrefixRe.FindStringSubmatch(stem); m != nil {
		return m[1], m[2]
	}
	if m := numPrefixRe.FindStringSubmatch(stem); m != nil {
		return m[1], m[2]
	}
	return "", stem
}

// FallbackTitle is used when a slug has no words to build a title from.
const FallbackTitle = "ADR"

// TitleFromSlug turns a filename slug back into a readable title:
// hyphens and underscores become spaces and each word is capitalised.
func TitleFromSlug(slug string) string {
	fields := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(fields) == 0 {
		return FallbackTitle
	}
	for i, f := range fields {
		fields[i] = capitalize(f)
	}
	return strings.Join(fields, " ")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
