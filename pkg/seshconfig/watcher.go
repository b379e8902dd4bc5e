package seshconfig

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a Reader's cache valid by watching sesh.toml for changes.
// While a Watcher runs, the Reader parses the document once per change
// instead of once per query.
type Watcher struct {
	reader  *Reader
	watcher *fsnotify.Watcher
	targets map[string]bool
}

// NewWatcher starts watching the directory holding the reader's document.
// The directory is watched rather than the file because editors replace
// files on save. A symlinked sesh.toml also has its target directory watched.
func NewWatcher(reader *Reader) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		reader:  reader,
		watcher: fw,
		targets: map[string]bool{filepath.Clean(reader.path): true},
	}

	dir := filepath.Dir(reader.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	if info, err := os.Lstat(reader.path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if target, err := filepath.EvalSymlinks(reader.path); err == nil {
			w.targets[target] = true
			if targetDir := filepath.Dir(target); targetDir != dir {
				if err := fw.Add(targetDir); err != nil {
					reader.logger.WithError(err).Warnf("Failed to watch symlink target dir %s", targetDir)
				}
			}
		}
	}

	reader.setCaching(true)
	return w, nil
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	defer w.reader.setCaching(false)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.targets[filepath.Clean(event.Name)] {
				w.reader.logger.Debugf("sesh.toml changed: %s op=%v", event.Name, event.Op)
				w.reader.Invalidate()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// We may have missed an event; stop trusting the cache.
			w.reader.logger.WithError(err).Warn("sesh.toml watcher error")
			w.reader.Invalidate()
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
