// Package watch re-runs a directory sync whenever markdown files change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/steven-cutting/decree/internal/checksum"
	"github.com/steven-cutting/decree/internal/storage"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// SyncFunc performs one full pass over the directory.
type SyncFunc func(ctx context.Context) error

// Watch runs sync once, then watches the store root and runs it again each
// time markdown files settle after a change, until ctx is cancelled. Bursts
// of events closer together than debounce collapse into one pass, and a
// pass is skipped when no markdown file changed since the previous one.
// An error from the first pass is returned; later sync errors are logged
// and do not stop the watcher.
func Watch(ctx context.Context, store storage.Provider, debounce time.Duration, logger *slog.Logger, sync SyncFunc) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	root := store.Root()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	last, err := runPass(ctx, store, logger, sync, nil)
	if err != nil {
		return err
	}
	logger.Info("watcher: started", slog.String("root", root), slog.Duration("debounce", debounce))

	var timer *time.Timer
	var timerCh <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			if last, err = runPass(ctx, store, logger, sync, last); err != nil {
				logger.Error("watcher: sync failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", ev.Name))
					}
					schedule()
					continue
				}
			}
			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// runPass calls sync unless the tree still matches prev, and returns the
// snapshot taken after the pass along with the sync error. A nil prev
// always runs.
func runPass(ctx context.Context, store storage.Provider, logger *slog.Logger, sync SyncFunc, prev map[string]string) (map[string]string, error) {
	before, err := snapshot(store)
	if err != nil {
		logger.Warn("watcher: snapshot failed", slog.String("error", err.Error()))
		return prev, nil
	}
	if prev != nil && checksum.Same(prev, before) {
		logger.Debug("watcher: no changes, skipping pass")
		return prev, nil
	}
	syncErr := sync(ctx)
	after, err := snapshot(store)
	if err != nil {
		logger.Warn("watcher: snapshot failed", slog.String("error", err.Error()))
		return before, syncErr
	}
	return after, syncErr
}

func snapshot(store storage.Provider) (map[string]string, error) {
	metas, err := store.List("")
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(metas))
	for _, m := range metas {
		out[m.Path] = m.Checksum
	}
	return out, nil
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
