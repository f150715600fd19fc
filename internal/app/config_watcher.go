package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/journal/internal/ports"
)

// DefaultDebounce is how long the watcher waits after the last change before reloading.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc re-reads configuration and renders the journal again.
type ReloadFunc func(ctx context.Context) error

// ConfigWatcher calls a ReloadFunc whenever the config file changes.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	reload   ReloadFunc
	logger   ports.Logger
}

// NewConfigWatcher creates a watcher for the config file at path.
// A non-positive debounce falls back to DefaultDebounce.
func NewConfigWatcher(path string, debounce time.Duration, reload ReloadFunc, logger ports.Logger) *ConfigWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &ConfigWatcher{
		path:     path,
		debounce: debounce,
		reload:   reload,
		logger:   logger,
	}
}

// Run watches the config file's directory until ctx is canceled.
// The directory is watched rather than the file so editors that save by rename are seen.
// Reload errors are logged and do not stop the watcher.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching config", ports.String("path", w.path))

	name := filepath.Base(w.path)

	// One timer, re-armed on every matching event; pending is nil while disarmed.
	debounce := time.NewTimer(w.debounce)
	debounce.Stop()
	defer debounce.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce.Reset(w.debounce)
			pending = debounce.C

		case <-pending:
			pending = nil
			w.logger.Info("config changed, reloading", ports.String("path", w.path))
			if err := w.reload(ctx); err != nil {
				w.logger.Error("reload failed", ports.Err(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", ports.Err(err))
		}
	}
}
