package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/b-hayes/notes/internal/core"
	"github.com/b-hayes/notes/internal/helpers"
	"github.com/fsnotify/fsnotify"
)

// Watch feeds the content of the file to the debouncer every time the file changes,
// until the context is done. The file is rendered immediately when the watch starts.
//
// The parent directory is watched instead of the file itself as many editors
// save by replacing the file.
func Watch(ctx context.Context, path string, debouncer *Debouncer) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("unable to watch %q: %w", path, err)
	}

	content, lastHash, err := readFile(path)
	if err != nil {
		return err
	}
	debouncer.RenderNow(content)

	for {
		select {
		case <-ctx.Done():
			debouncer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			core.CurrentLogger().Tracef("Received %s", event)
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			content, hash, err := readFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				// Removed between the event and the read
				continue
			}
			if err != nil {
				return err
			}
			if hash == lastHash {
				// Editors often emit several events for a single save
				continue
			}
			lastHash = hash
			core.CurrentLogger().Debugf("%s changed", path)
			debouncer.Trigger(content)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			core.CurrentLogger().Warnf("Watcher error: %v", err)
		}
	}
}

func readFile(path string) (content string, hash string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), helpers.Hash(data), nil
}
