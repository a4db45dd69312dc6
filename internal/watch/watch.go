// Package watch reruns a puzzle whenever its input file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls a function once and then after every change to one file.
type Watcher struct {
	path string
	// Debounce batches the bursts of events a single save produces.
	Debounce time.Duration
	logger   *slog.Logger
}

func New(path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{path: filepath.Clean(path), Debounce: 100 * time.Millisecond, logger: logger}
}

// Run blocks until ctx is done. The file's directory is watched rather than
// the file, so editors that save by renaming are seen too. Errors from fn
// are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching", "path", w.path)
	w.call(ctx, fn)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("input changed", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.call(ctx, fn)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) call(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		w.logger.Error("run failed", "path", w.path, "err", err)
	}
}
