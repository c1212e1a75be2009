package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string, reloads chan<- Config, errs chan<- error) {
	t.Helper()

	w := NewWatcher(path,
		func(cfg Config) { reloads <- cfg },
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(err error) { errs <- err }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
}

func TestWatcherReloadsValidEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	reloads := make(chan Config, 4)
	errs := make(chan error, 4)
	startWatcher(t, path, reloads, errs)

	edited := minimalYAML + "\ntagline: Нова колекция\n"
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o600))

	select {
	case cfg := <-reloads:
		assert.Equal(t, "Нова колекция", cfg.Tagline)
	case err := <-errs:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	reloads := make(chan Config, 4)
	errs := make(chan error, 4)
	startWatcher(t, path, reloads, errs)

	require.NoError(t, os.WriteFile(path, []byte("brand: \"\"\n"), 0o600))

	select {
	case <-reloads:
		t.Fatal("invalid config must not be delivered")
	case err := <-errs:
		assert.Contains(t, err.Error(), "brand is required")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o600))

	reloads := make(chan Config, 4)
	errs := make(chan error, 4)
	startWatcher(t, path, reloads, errs)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600))

	select {
	case <-reloads:
		t.Fatal("unrelated file triggered a reload")
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "site.yaml"), nil)

	err := w.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "site: watch")
}
