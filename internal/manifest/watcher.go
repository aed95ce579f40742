package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/d2verb/resolvepath"
	"github.com/fsnotify/fsnotify"
)

const debounce = 200 * time.Millisecond

// Watcher re-resolves a manifest whenever its file changes.
type Watcher struct {
	file     string
	resolver *resolvepath.Resolver
	logger   *slog.Logger
	onReload func(*Result, error)
	reloads  atomic.Uint32
}

// NewWatcher creates a watcher for the manifest at file. onReload is called
// with the new result, or the error, after every change.
func NewWatcher(r *resolvepath.Resolver, file string, logger *slog.Logger, onReload func(*Result, error)) (*Watcher, error) {
	file, err := r.TryResolve(file)
	if err != nil {
		return nil, fmt.Errorf("resolve manifest path: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		file:     file,
		resolver: r,
		logger:   logger,
		onReload: onReload,
	}, nil
}

// Run watches the manifest until ctx is done.
//
// The parent directory is watched rather than the file so that editors
// replacing the file on save are still noticed. Reloads run on the calling
// goroutine, so onReload is never called concurrently or after Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.file)); err != nil {
		return fmt.Errorf("watch %s: %w", w.file, err)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timer.C:
			w.reload()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.file) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

// reload resolves the manifest again and reports the outcome.
func (w *Watcher) reload() {
	count := w.reloads.Add(1)
	w.logger.Info("Reloading manifest", "path", w.file, "count", count)

	res, err := LoadAndResolve(w.resolver, w.file)
	if err != nil {
		w.logger.Error("Failed to reload manifest", "error", err)
		w.onReload(nil, err)
		return
	}

	w.logger.Info("Manifest reloaded", "count", count, "entries", len(res.Entries))
	w.onReload(res, nil)
}

// ReloadCount returns the number of times the manifest has been reloaded.
func (w *Watcher) ReloadCount() uint32 {
	return w.reloads.Load()
}
