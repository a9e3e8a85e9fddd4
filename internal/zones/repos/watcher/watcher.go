// Package watcher notifies the embedding service when zone files in a
// directory change, so changed documents can be reloaded and
// reconverted without restarting the process.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zonekit/zoned/internal/zones/common/log"
)

// debounceDelay absorbs the bursts of write events editors and atomic
// renames produce for a single logical change.
const debounceDelay = 250 * time.Millisecond

// Watcher watches a zone directory and invokes a callback, debounced,
// when a zone file is created, written, or removed.
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	onChange func()
	logger   log.Logger
}

// New creates a Watcher for the given directory.
func New(dir string, onChange func(), logger log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = log.GetLogger()
	}
	return &Watcher{
		dir:      dir,
		watcher:  fsw,
		onChange: onChange,
		logger:   logger,
	}, nil
}

// Start blocks, dispatching debounced change callbacks until ctx is
// cancelled or the underlying watcher fails.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info(map[string]any{"dir": w.dir}, "watching zone directory")

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(nil, "zone watcher stopped")
			return w.watcher.Close()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isZoneFile(event.Name) {
				continue
			}
			debounce.Reset(debounceDelay)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(map[string]any{"error": err.Error()}, "zone watcher error")

		case <-debounce.C:
			w.logger.Debug(map[string]any{"dir": w.dir}, "zone directory changed")
			if w.onChange != nil {
				w.onChange()
			}
		}
	}
}

// isZoneFile reports whether a path has a zone document extension.
func isZoneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	default:
		return false
	}
}
