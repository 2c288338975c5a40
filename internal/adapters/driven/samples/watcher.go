package samples

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/phonebook-cli/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last change
// before notifying. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// ErrWatcherClosed is returned when the underlying watcher stops
// delivering events.
var ErrWatcherClosed = errors.New("samples: watcher closed")

// Watcher follows a single record file and reports when its content may
// have changed. The parent directory is watched so that files replaced by
// rename (as many editors do) keep being followed.
type Watcher struct {
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
	}
}

// WithDebounce overrides the quiet period before a change is reported.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Path returns the followed file.
func (w *Watcher) Path() string {
	return w.path
}

// Watch blocks until ctx is cancelled, calling onChange after each burst of
// create or write events on the followed file. onChange runs on the
// watcher's goroutine; a slow callback delays later notifications.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	logger.Debug("following %s", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("%s: %s", event.Op, event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			logger.Warn("watch error on %s: %v", w.path, err)

		case <-timer.C:
			onChange(w.path)
		}
	}
}

// relevant reports whether event may have changed the followed file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}
