package title

import (
	"fmt"
	"strings"

	"github.com/steven-cutting/decree/internal/parser"
	"github.com/steven-cutting/decree/internal/storage"
)

// HeadingOptions tunes MutateHeading.
type HeadingOptions struct {
	// Prefix overrides the prefix parsed from the existing heading.
	Prefix string
	// DefaultSeparator is used when a prefix is written into a heading that
	// had none. Empty means ": ".
	DefaultSeparator string
	DryRun           bool
}

// MutateHeading rewrites the first heading of path to carry newTitle, or
// inserts one at the top when the file has none. It reports whether the
// file changed (or would change, in dry-run mode). Only the heading line is
// touched: other lines, their endings, and the presence of a trailing
// newline are kept as they were.
func MutateHeading(store storage.Provider, path, newTitle string, opts HeadingOptions) (bool, error) {
	data, err := store.Read(path)
	if err != nil {
		return false, fmt.Errorf("title: read %s: %w", path, err)
	}
	content := string(data)
	lines := strings.Split(content, "\n")

	idx, info, ok := parser.FindHeading(lines)
	if !ok {
		info = parser.Heading{Hashes: "#", Space: " "}
		newLine := info.WithTitle(newTitle, opts.Prefix, opts.DefaultSeparator)
		if opts.DryRun {
			return true, nil
		}
		return true, store.Write(path, []byte(insertLine(content, lines[0], newLine)))
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = info.Prefix
	}
	newLine := info.WithTitle(newTitle, prefix, opts.DefaultSeparator)
	current, cr := splitCR(lines[idx])
	if current == newLine {
		return false, nil
	}
	if opts.DryRun {
		return true, nil
	}
	lines[idx] = newLine + cr
	return true, store.Write(path, []byte(strings.Join(lines, "\n")))
}

// insertLine puts line above content using the line ending of firstLine.
// An empty file stays without a trailing newline.
func insertLine(content, firstLine, line string) string {
	if content == "" {
		return line
	}
	eol := "\n"
	if strings.HasSuffix(firstLine, "\r") {
		eol = "\r\n"
	}
	return line + eol + content
}

func splitCR(line string) (string, string) {
	if trimmed, ok := strings.CutSuffix(line, "\r"); ok {
		return trimmed, "\r"
	}
	return line, ""
}
