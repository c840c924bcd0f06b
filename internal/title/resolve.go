package title

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/steven-cutting/decree/internal/storage"
)

// OpenDir validates dir and binds a storage provider to it. A missing path
// or a non-directory is reported as ErrDirectoryInvalid.
func OpenDir(dir string) (*storage.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, dirInvalid("Directory %s does not exist", dir)
		}
		return nil, fmt.Errorf("title: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, dirInvalid("Directory %s is not a directory", dir)
	}
	store, err := storage.NewFS(dir)
	if err != nil {
		return nil, fmt.Errorf("title: open %s: %w", dir, err)
	}
	return store, nil
}

// ResolveTarget maps a user-supplied target to a file under the store root.
// It tries, in order: a path (absolute, or relative to the root), the name
// with ".md" appended, the zero-padded number prefix when target is all
// digits, and finally any file whose name ends in "-<target>.md". The first
// match wins.
func ResolveTarget(store storage.Provider, target string) (string, error) {
	if p, ok, err := resolvePath(store.Root(), target); err != nil || ok {
		return p, err
	}

	if matches, err := store.Glob(target + ".md"); err != nil {
		return "", err
	} else if len(matches) > 0 {
		return matches[0], nil
	}

	if isDigits(target) {
		if n, err := strconv.Atoi(target); err == nil {
			matches, err := store.Glob(fmt.Sprintf("%04d-*.md", n))
			if err != nil {
				return "", err
			}
			if len(matches) > 0 {
				return matches[0], nil
			}
		}
	}

	matches, err := store.Glob("*-" + target + ".md")
	if err != nil {
		return "", err
	}
	if len(matches) > 0 {
		return matches[0], nil
	}
	return "", targetNotFound("Could not find entry for target '%s'", target)
}

// resolvePath handles targets naming an existing path. ok is false when
// nothing exists there so the caller can fall back to name matching.
func resolvePath(root, target string) (string, bool, error) {
	candidate := target
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(root, candidate)
	}
	info, err := os.Stat(candidate)
	if err != nil {
		return "", false, nil
	}

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", false, fmt.Errorf("title: resolve %s: %w", candidate, err)
	}
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", false, fmt.Errorf("title: resolve %s: %w", root, err)
	}
	if !info.Mode().IsRegular() {
		return "", false, targetUnsafe("Target %s is not a file", resolved)
	}
	rel, err := filepath.Rel(realRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false, targetUnsafe("Target %s is outside the entry directory", resolved)
	}
	return rel, true, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
