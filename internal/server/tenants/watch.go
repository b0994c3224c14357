package tenants

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 300 * time.Millisecond

// Watch reloads the directory whenever its file changes until ctx is done.
// The parent directory is watched so editor rename-and-replace saves are
// seen too.
func (d *Directory) Watch(ctx context.Context, logger logging.Logger) error {
	if d.path == "" {
		return fmt.Errorf("directory was not loaded from a file")
	}
	log := logger.With("module", "tenants", "path", d.path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(d.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", d.path, err)
	}

	target := filepath.Clean(d.path)
	reload := make(chan struct{}, 1)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			if err := d.Reload(); err != nil {
				log.Error(ctx, "tenant directory reload failed, keeping previous", "error", err)
				continue
			}
			log.Info(ctx, "tenant directory reloaded", "tenants", len(d.List()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn(ctx, "watcher error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
