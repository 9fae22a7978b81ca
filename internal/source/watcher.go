package source

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/camview/camview/internal/logger"
)

// Watcher signals whenever a JSON source file under the watched
// directory tree changes, so the viewer can rebuild its slot map.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching dir and its immediate camera subdirectories.
// onChange runs on the watcher goroutine for every created or written
// .json file; keep it cheap and hand off to the UI loop.
func Watch(dir string, onChange func(path string)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, err
	}
	entries, _ := filepath.Glob(filepath.Join(dir, "*"))
	for _, entry := range entries {
		if err := fs.Add(entry); err != nil {
			logger.Warn("watch subdirectory", logger.ErrField(err))
		}
	}

	w := &Watcher{fs: fs, done: make(chan struct{})}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func(path string)) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".json" {
				continue
			}
			onChange(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("source watcher", logger.ErrField(err))
		}
	}
}

// Close stops the watcher goroutine and releases the inotify handle.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
