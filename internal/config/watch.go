package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk.
// The parent directory is watched so editors that replace the file
// on save are still picked up.
type Watcher struct {
	path   string
	fsw    *fsnotify.Watcher
	logger *log.Logger
}

// NewWatcher starts watching path. Close must be called, or Run used,
// to release the underlying watcher.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{path: abs, fsw: fsw, logger: logger}, nil
}

// Run delivers every successfully parsed revision of the file to onChange
// until ctx is cancelled. Invalid revisions are logged and skipped.
func (w *Watcher) Run(ctx context.Context, onChange func(SnakeConfig)) error {
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			data, err := os.ReadFile(w.path)
			if err != nil || len(data) == 0 {
				// Mid-save truncation; the next write carries the content.
				continue
			}
			cfg, err := Parse(data)
			if err != nil {
				w.logger.Warn("Config reload rejected", "path", w.path, "error", err)
				continue
			}
			w.logger.Info("Config reloaded", "path", w.path)
			onChange(cfg)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Config watcher error", "error", err)
		}
	}
}

// Close stops the watcher without running it.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, path string, logger *log.Logger, onChange func(SnakeConfig)) error {
	w, err := NewWatcher(path, logger)
	if err != nil {
		return err
	}
	return w.Run(ctx, onChange)
}
