package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the program file must go unchanged before it runs
// again. Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// watch runs the program at path, then runs it again in a fresh state each
// time the file is written, until ctx is done. Errors in the program are
// reported without ending the watch.
func (it *interp) watch(ctx context.Context, path string, compiled bool, argv []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Watch the directory rather than the file so that editors which replace
	// the file by renaming over it are noticed.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	target := filepath.Clean(path)

	runOnce := func() {
		if err := it.runFile(path, compiled, argv); err != nil {
			it.report(path, err)
		}
	}
	runOnce()
	var again <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&fsnotify.Write == fsnotify.Write || ev.Op&fsnotify.Create == fsnotify.Create {
				again = time.After(settle)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			it.log.Error("watching program", slog.String("file", path), slog.Any("error", err))
		case <-again:
			again = nil
			it.log.Info("program changed", slog.String("file", path))
			runOnce()
		}
	}
}
