package moderator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchLexicon reloads the engine lexicon every time the file changes. Blocks until ctx is done.
// Changes are collected for delay before reloading, a broken file keeps the active lexicon.
func (m *Moderator) WatchLexicon(ctx context.Context, path string, delay time.Duration) error {
	return watch(ctx, path, delay, func(r io.Reader) error {
		n, err := m.engine.ReloadLexicon(r)
		if err != nil {
			return fmt.Errorf("failed to reload lexicon: %w", err)
		}
		log.Printf("[INFO] lexicon reloaded from %s, %d entries", path, n)
		return nil
	})
}

// watch calls onChange with the file content after each change of the file.
// The directory is watched, not the file itself, so editors replacing the file are handled.
func watch(ctx context.Context, path string, delay time.Duration, onChange func(io.Reader) error) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to stat file %q: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to add %s to watcher: %w", path, err)
	}
	log.Printf("[DEBUG] watching %s", path)

	reloadTimer := time.NewTimer(delay)
	reloadTimer.Stop()
	defer reloadTimer.Stop()
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] stopping watcher for %s, %v", path, ctx.Err())
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Printf("[DEBUG] file %q updated, op: %v", event.Name, event.Op)
			reloadTimer.Reset(delay)
		case <-reloadTimer.C:
			data, err := readFile(path)
			if err != nil {
				log.Printf("[WARN] failed to read updated file %s: %v", path, err)
				continue
			}
			if err = onChange(data); err != nil {
				log.Printf("[WARN] %v", err)
			}
		case e, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] watcher error: %v", e)
		}
	}
}

func readFile(path string) (io.Reader, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is controlled by the app
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return bytes.NewReader(data), nil
}
