package indexer

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/mokares/internal/checksum"
)

// WatchDebounce is how long the watcher waits for a burst of file events
// to settle before rebuilding.
const WatchDebounce = 200 * time.Millisecond

// RebuildCallback is called after the watcher wrote a new README.
type RebuildCallback func(doc string)

// Watch writes the README, then rebuilds it whenever anything under the
// article, cheatsheet or guide roots changes, until ctx is cancelled. Every
// rebuild is a full Build; the file is only rewritten when its content
// changed.
//
// New directories created at runtime are added to the watch list. Events on
// the README itself are ignored.
func (ix *Indexer) Watch(ctx context.Context, cb RebuildCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, root := range []string{ix.cfg.Article, ix.cfg.Cheatsheet, ix.cfg.Guide} {
		if err := addDirsRecursive(w, ix.store.Abs(root)); err != nil {
			return err
		}
	}
	readme := ix.store.Abs(ix.cfg.Readme)

	var last string
	rebuild := func() {
		doc, err := ix.Build(ctx)
		if err != nil {
			ix.logger.Warn("watcher: build failed", slog.String("error", err.Error()))
			return
		}
		digest := checksum.Of(doc)
		if digest == last {
			ix.logger.Debug("watcher: readme unchanged")
			return
		}
		if existing, err := ix.store.Read(ix.cfg.Readme); err == nil && checksum.Equal(existing, digest) {
			last = digest
			ix.logger.Debug("watcher: readme already current")
			return
		}
		if err := ix.store.Write(ix.cfg.Readme, []byte(doc)); err != nil {
			ix.logger.Warn("watcher: write failed", slog.String("error", err.Error()))
			return
		}
		last = digest
		ix.logger.Info("watcher: readme rebuilt", slog.String("path", ix.cfg.Readme))
		if cb != nil {
			cb(doc)
		}
	}

	rebuild()
	ix.logger.Info("watcher: started",
		slog.String("article", ix.cfg.Article),
		slog.String("cheatsheet", ix.cfg.Cheatsheet),
		slog.String("guide", ix.cfg.Guide))

	// timer debounces bursts of events into one rebuild.
	var timer *time.Timer
	var timerCh <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(WatchDebounce)
			timerCh = timer.C
		} else {
			timer.Reset(WatchDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			ix.logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			rebuild()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name == readme || isTempFile(ev.Name) {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						ix.logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
				}
			}
			ix.logger.Debug("watcher: event", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ix.logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and its subdirectories to the watcher,
// skipping version-control directories.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && d.Name() == ".git" {
			return fs.SkipDir
		}
		return w.Add(path)
	})
}

func isTempFile(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".mokares-tmp-")
}
