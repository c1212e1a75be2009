package site

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce coalesces the burst of events editors produce on save.
const DefaultReloadDebounce = 200 * time.Millisecond

// Watcher reloads the site file whenever it changes on disk and hands valid
// configurations to a callback. Invalid edits are reported and otherwise
// ignored, so the running page keeps its last good catalog.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
	onReload func(Config)
	onError  func(error)
}

// WatcherOption customises a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce overrides DefaultReloadDebounce.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithWatchLogger sets the watcher's logger.
func WithWatchLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.log = l }
}

// WithErrorHandler receives load and validation failures.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher returns a watcher for the site file at path.
func NewWatcher(path string, onReload func(Config), opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultReloadDebounce,
		onReload: onReload,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w
}

// Run watches until ctx is cancelled. The parent directory is watched rather
// than the file so that editors replacing the file atomically are noticed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("site: watch: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("site: watch %s: %w", w.path, err)
	}

	w.log.InfoContext(ctx, "watching site config", "path", w.path)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.fail(ctx, fmt.Errorf("site: watch: %w", err))

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		w.fail(ctx, err)
		return
	}
	if err := cfg.Validate(); err != nil {
		w.fail(ctx, err)
		return
	}

	w.log.InfoContext(ctx, "site config reloaded", "path", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) fail(ctx context.Context, err error) {
	w.log.WarnContext(ctx, "site config reload failed", "path", w.path, "error", err)
	if w.onError != nil {
		w.onError(err)
	}
}
