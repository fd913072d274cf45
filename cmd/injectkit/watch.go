package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/randalmurphal/injectkit/config"
)

// runWatch renders once, then re-renders whenever the template or one of the
// vars files changes. Render failures are logged and watching continues; the
// command only fails if the watch itself cannot be established.
func runWatch(ctx context.Context, cfg config.Config, input string, logger *slog.Logger, stdout io.Writer) error {
	if input == "-" {
		return fmt.Errorf("--watch requires a template file, not stdin")
	}
	if logger == nil {
		logger = slog.Default()
	}

	watched := make(map[string]bool)
	watched[filepath.Clean(input)] = true
	for _, path := range cfg.Vars {
		watched[filepath.Clean(path)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parent directories rather than the files themselves: editors and
	// config management tools often replace files, which would drop a watch
	// on the file's inode.
	dirs := make(map[string]bool)
	for path := range watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	render := func() {
		if err := renderOnce(ctx, cfg, input, logger, stdout); err != nil {
			logger.Error("render failed", slog.String("input", input), slog.String("error", err.Error()))
			return
		}
		logger.Info("rendered", slog.String("input", input))
	}

	render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				logger.Debug("change detected", slog.String("file", event.Name), slog.String("op", event.Op.String()))
				render()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", slog.String("error", err.Error()))
		}
	}
}
