// Package title keeps entry headings, filenames, and inbound links in
// agreement with each other.
package title

import (
	"fmt"
	"path/filepath"

	"github.com/steven-cutting/decree/internal/models"
	"github.com/steven-cutting/decree/internal/parser"
	"github.com/steven-cutting/decree/internal/slug"
	"github.com/steven-cutting/decree/internal/storage"
)

// UpdateTitle sets the title of the entry identified by target. When the
// rename policy is on, the file is also renamed to the slug of newTitle and
// every link to it is rewritten. rename overrides the directory's config
// when non-nil.
func UpdateTitle(dir, target, newTitle string, rename *bool, ec ExecutionContext) error {
	store, err := OpenDir(dir)
	if err != nil {
		return err
	}
	doRename, err := renamePolicy(dir, rename)
	if err != nil {
		return err
	}
	path, err := ResolveTarget(store, target)
	if err != nil {
		return err
	}
	log := ec.logger().With("path", path, "dry_run", ec.DryRun)
	log.Debug("updating title", "title", newTitle, "rename", doRename)

	changed, err := MutateHeading(store, path, newTitle, HeadingOptions{DryRun: ec.DryRun})
	if err != nil {
		return err
	}
	if changed {
		ec.emit("Updated title in %s", path)
	}
	if !doRename {
		return nil
	}
	_, err = renameAndRelink(store, path, newTitle, "", ec)
	return err
}

// SyncTitles walks the top-level markdown files of dir in sorted order and
// brings each heading prefix in line with the filename prefix. When the
// rename policy is on, filenames are then brought in line with the
// headings' titles.
func SyncTitles(dir string, rename *bool, ec ExecutionContext) error {
	store, err := OpenDir(dir)
	if err != nil {
		return err
	}
	doRename, err := renamePolicy(dir, rename)
	if err != nil {
		return err
	}
	paths, err := store.Glob("*.md")
	if err != nil {
		return fmt.Errorf("title: list %s: %w", dir, err)
	}
	log := ec.logger().With("dir", dir, "dry_run", ec.DryRun)
	log.Debug("syncing titles", "files", len(paths), "rename", doRename)

	for _, path := range paths {
		data, err := store.Read(path)
		if err != nil {
			return fmt.Errorf("title: read %s: %w", path, err)
		}
		heading, hasHeading := parser.GetHeading(string(data))
		filePrefix, fileSlug := parser.SplitName(filepath.Base(path))

		titleText := heading.Title
		if !hasHeading || titleText == "" {
			titleText = parser.TitleFromSlug(fileSlug)
		}

		if filePrefix != "" && (!hasHeading || heading.Prefix != filePrefix) {
			changed, err := MutateHeading(store, path, titleText, HeadingOptions{
				Prefix:           filePrefix,
				DefaultSeparator: heading.Separator,
				DryRun:           ec.DryRun,
			})
			if err != nil {
				return err
			}
			if changed {
				ec.emit("Updated title in %s", path)
			}
		}

		if doRename {
			if _, err := renameAndRelink(store, path, titleText, filePrefix, ec); err != nil {
				return err
			}
		}
	}
	return nil
}

// renameAndRelink renames path to the slug of title and, outside dry-run,
// rewrites inbound links. It returns the entry's path after the step.
func renameAndRelink(store storage.Provider, path, title, prefix string, ec ExecutionContext) (string, error) {
	newPath, renamed, err := RenameToSlug(store, path, title, prefix, ec.DryRun)
	if err != nil {
		return path, err
	}
	if !renamed {
		return path, nil
	}
	ec.emit("Renamed %s -> %s", filepath.Base(path), filepath.Base(newPath))
	if ec.DryRun {
		return newPath, nil
	}

	updated, err := RewriteLinks(store, path, newPath)
	if err != nil {
		return newPath, err
	}
	for _, p := range updated {
		ec.emit("Updated links in %s", p)
	}
	ec.logger().Debug("renamed entry", "from", path, "to", newPath, "relinked", len(updated))
	return newPath, nil
}

func renamePolicy(dir string, override *bool) (bool, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return false, err
	}
	if override != nil {
		return *override, nil
	}
	return cfg.Rename, nil
}

// ListEntries describes every top-level entry in dir, in sorted order, with
// the naming convention recovered from its filename and heading.
func ListEntries(dir string) ([]models.Entry, error) {
	store, err := OpenDir(dir)
	if err != nil {
		return nil, err
	}
	paths, err := store.Glob("*.md")
	if err != nil {
		return nil, fmt.Errorf("title: list %s: %w", dir, err)
	}
	out := make([]models.Entry, 0, len(paths))
	for _, path := range paths {
		data, err := store.Read(path)
		if err != nil {
			return nil, fmt.Errorf("title: read %s: %w", path, err)
		}
		out = append(out, describe(path, string(data)))
	}
	return out, nil
}

// describe builds the Entry view of one file. An entry is in sync when a
// renaming sync would leave it untouched.
func describe(path, content string) models.Entry {
	prefix, fileSlug := parser.SplitName(filepath.Base(path))
	heading, ok := parser.GetHeading(content)
	e := models.Entry{
		Path:       filepath.ToSlash(path),
		FilePrefix: prefix,
		FileSlug:   fileSlug,
		Title:      heading.Title,
		HasHeading: ok,
		HeadPrefix: heading.Prefix,
	}
	if !ok || e.Title == "" {
		e.Title = parser.TitleFromSlug(fileSlug)
	}
	want := ComposeName(prefix, slug.OrFallback(e.Title), filepath.Ext(path))
	e.InSync = (prefix == "" || ok && heading.Prefix == prefix) && want == filepath.Base(path)
	return e
}
