package title

import (
	"fmt"
	"path/filepath"

	"github.com/steven-cutting/decree/internal/parser"
	"github.com/steven-cutting/decree/internal/slug"
	"github.com/steven-cutting/decree/internal/storage"
)

// RenameToSlug renames path so its name matches the slug of title, keeping
// the extension and a number or date prefix. The prefix argument overrides
// the one parsed from the current filename. It returns the (possibly
// unchanged) path and whether a rename happened. In dry-run mode nothing is
// touched and the would-be path is returned.
func RenameToSlug(store storage.Provider, path, title, prefix string, dryRun bool) (string, bool, error) {
	name := filepath.Base(path)
	if prefix == "" {
		prefix, _ = parser.SplitName(name)
	}
	newName := ComposeName(prefix, slug.OrFallback(title), filepath.Ext(name))
	newPath := filepath.Join(filepath.Dir(path), newName)
	if newPath == path {
		return path, false, nil
	}
	if dryRun {
		return newPath, true, nil
	}
	if store.Exists(newPath) && !store.SameFile(path, newPath) {
		return path, false, renameConflict("Cannot rename %s to %s: target already exists", name, newName)
	}
	if err := store.Move(path, newPath); err != nil {
		return path, false, fmt.Errorf("title: rename %s: %w", name, err)
	}
	return newPath, true, nil
}

// ComposeName builds an entry filename from its parts.
func ComposeName(prefix, stem, ext string) string {
	if prefix != "" {
		return prefix + "-" + stem + ext
	}
	return stem + ext
}
