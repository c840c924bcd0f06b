package title

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/steven-cutting/decree/internal/storage"
)

var (
	inlineLinkRe    = regexp.MustCompile(`(?P<open>!?\[[^\]]*\]\()(?P<target>[^)]+)(?P<close>\))`)
	referenceLinkRe = regexp.MustCompile(`(?m)^(?P<open>\[[^\]]+\]:\s*)(?P<target>\S+)(?P<rest>.*)$`)
	linkTitleRe     = regexp.MustCompile(`^(.*?)(\s+(?:"[^"]*"|'[^']*'|\([^)]*\)))$`)
)

// RewriteLinks updates every markdown file under the store root whose inline
// or reference-style links point at oldPath so they point at newPath
// instead. Files are visited in lexicographic path order and only written
// when their content changes. The modified paths are returned.
func RewriteLinks(store storage.Provider, oldPath, newPath string) ([]string, error) {
	entries, err := store.List("")
	if err != nil {
		return nil, fmt.Errorf("title: scan links: %w", err)
	}

	var updated []string
	for _, e := range entries {
		data, err := store.Read(e.Path)
		if err != nil {
			return updated, fmt.Errorf("title: read %s: %w", e.Path, err)
		}
		text := string(data)
		dir := filepath.Dir(e.Path)
		candidates := linkCandidates(dir, oldPath)
		if !mentionsAny(text, candidates) {
			continue
		}
		newText := replaceLinks(text, candidates, relSlash(dir, newPath))
		if newText == text {
			continue
		}
		if err := store.Write(e.Path, []byte(newText)); err != nil {
			return updated, fmt.Errorf("title: write %s: %w", e.Path, err)
		}
		updated = append(updated, e.Path)
	}
	return updated, nil
}

// linkCandidates lists the spellings a file in dir may use to reference
// target: the relative path, and the same with a leading "./" when it does
// not climb out of dir.
func linkCandidates(dir, target string) map[string]struct{} {
	rel := relSlash(dir, target)
	out := map[string]struct{}{rel: {}}
	if !strings.HasPrefix(rel, "../") {
		out["./"+rel] = struct{}{}
	}
	return out
}

func mentionsAny(text string, candidates map[string]struct{}) bool {
	for c := range candidates {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}

// replaceLinks swaps the path part of matching inline links and reference
// definitions for newRel. Fragments, queries, and link titles are kept.
func replaceLinks(text string, candidates map[string]struct{}, newRel string) string {
	swap := func(target string) (string, bool) {
		_, suffix, ok := matchTarget(target, candidates)
		if !ok {
			return "", false
		}
		return newRel + suffix, true
	}
	text = replaceGroup(inlineLinkRe, text, "target", swap)
	return replaceGroup(referenceLinkRe, text, "target", swap)
}

// matchTarget reports whether target points at one of candidates. The whole
// target is tried first so paths containing spaces match; only then is a
// trailing quoted or parenthesised link title set aside.
func matchTarget(target string, candidates map[string]struct{}) (string, string, bool) {
	base, suffix := splitTarget(target)
	if _, ok := candidates[base]; ok {
		return base, suffix, true
	}
	m := linkTitleRe.FindStringSubmatch(target)
	if m == nil {
		return "", "", false
	}
	base, suffix = splitTarget(m[1])
	if _, ok := candidates[base]; !ok {
		return "", "", false
	}
	return base, suffix + m[2], true
}

// replaceGroup rewrites the named group of every match of re for which fn
// returns true, leaving the rest of the text byte-for-byte intact.
func replaceGroup(re *regexp.Regexp, text, group string, fn func(string) (string, bool)) string {
	gi := re.SubexpIndex(group)
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2*gi], m[2*gi+1]
		repl, ok := fn(text[start:end])
		if !ok {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(repl)
		last = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// splitTarget separates a link target into its path and the suffix that
// starts at the first '#' or '?'.
func splitTarget(target string) (string, string) {
	if i := strings.IndexAny(target, "#?"); i >= 0 {
		return target[:i], target[i:]
	}
	return target, ""
}

// relSlash returns target relative to dir with forward slashes.
func relSlash(dir, target string) string {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		rel = target
	}
	return filepath.ToSlash(rel)
}
