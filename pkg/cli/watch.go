package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/endoflife-date/eolint/pkg/console"
	"github.com/endoflife-date/eolint/pkg/constants"
	"github.com/endoflife-date/eolint/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// debounceWindow coalesces the burst of fsnotify events editors emit on save.
const debounceWindow = 200 * time.Millisecond

// watchAndValidate validates once, then re-validates whenever a watched
// product file changes, until the context is cancelled. Build failures do
// not stop the loop; the next save gets a fresh run.
func watchAndValidate(ctx context.Context, config BuildConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dirs := make(map[string]bool)
	for _, file := range config.Files {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
		watchLog.Printf("Watching %s", dir)
	}

	runOnce := func() {
		if err := runValidation(ctx, config, false); err != nil {
			console.PrintError("%v", err)
		}
	}

	console.PrintInfo("Watching %d product file(s); press Ctrl-C to stop", len(config.Files))
	runOnce()

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(event.Name) != constants.ProductFileExtension {
				continue
			}
			watchLog.Printf("Change detected: %s", event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			console.PrintWarning("Watcher error: %v", err)
		}
	}
}
