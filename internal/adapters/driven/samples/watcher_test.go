package samples

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	w := NewWatcher("./a/../phoneBook-small.txt")
	assert.Equal(t, "phoneBook-small.txt", w.Path())
	assert.Equal(t, DefaultDebounce, w.debounce)

	w.WithDebounce(time.Second)
	assert.Equal(t, time.Second, w.debounce)
}

func TestWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	w := NewWatcher(path)

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"rename", fsnotify.Event{Name: path, Op: fsnotify.Rename}, false},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "other.txt"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.relevant(tt.event))
		})
	}
}

func TestWatcher_Watch_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 a\n"), 0600))

	w := NewWatcher(path).WithDebounce(20 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(p string) { changes <- p })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("1 a\n2 b\n"), 0600))

	select {
	case got := <-changes:
		assert.Equal(t, path, got)
	case <-ctx.Done():
		t.Fatal("no change reported")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcher_Watch_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "book.txt"))

	err := w.Watch(context.Background(), func(string) {})

	assert.Error(t, err)
}
