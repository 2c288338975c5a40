package logger

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// capture routes log output to a buffer and restores defaults afterwards.
func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{"debug", func() { Debug("search %d", 555) }, "[DEBUG] search 555\n"},
		{"info", func() { Info("loaded %d contacts", 3) }, "[INFO] loaded 3 contacts\n"},
		{"warn", func() { Warn("skipped line") }, "[WARN] skipped line\n"},
		{"section", func() { Section("Import") }, "\n=== Import ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("d")
	Info("i")
	Warn("w")
	Section("s")
	Elapsed("op", time.Now())

	assert.Zero(t, buf.Len())
}

func TestElapsed(t *testing.T) {
	buf := capture(t, true)

	Elapsed("remove", time.Now().Add(-time.Millisecond))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[DEBUG] remove took "), out)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
