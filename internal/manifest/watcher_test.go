package manifest

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "paths:\n  cache: ./cache\n")

	var (
		mu      sync.Mutex
		results []*Result
		errs    []error
	)
	w, err := NewWatcher(testResolver(), path, nil, func(res *Result, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
			return
		}
		results = append(results, res)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("paths:\n  logs: ./logs\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(results) > 0
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, errs)
	last := results[len(results)-1]
	require.Len(t, last.Entries, 1)
	assert.Equal(t, "logs", last.Entries[0].Name)
	assert.Equal(t, filepath.Join(dir, "logs"), last.Entries[0].Resolved)
	assert.GreaterOrEqual(t, w.ReloadCount(), uint32(1))
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "paths:\n  cache: ./cache\n")

	w, err := NewWatcher(testResolver(), path, nil, func(*Result, error) {})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(2 * debounce)

	cancel()
	require.NoError(t, <-done)
	assert.Zero(t, w.ReloadCount())
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "paths: {}\n")
	w, err := NewWatcher(testResolver(), path, nil, func(*Result, error) {})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, w.Run(ctx))
}

func TestWatcher_NoReloadAfterRunReturns(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "paths:\n  cache: ./cache\n")

	var calls atomic.Int32
	w, err := NewWatcher(testResolver(), path, nil, func(*Result, error) {
		calls.Add(1)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("paths:\n  logs: ./logs\n"), 0o644))
	// Stop well inside the debounce window so a reload is still pending.
	time.Sleep(debounce / 4)
	cancel()
	require.NoError(t, <-done)

	time.Sleep(2 * debounce)
	assert.Zero(t, calls.Load())
	assert.Zero(t, w.ReloadCount())
}

func TestWatcher_BurstOfWritesReloadsSequentially(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "paths:\n  cache: ./cache\n")

	var (
		active  atomic.Int32
		overlap atomic.Bool
		calls   atomic.Int32
	)
	w, err := NewWatcher(testResolver(), path, nil, func(*Result, error) {
		if active.Add(1) > 1 {
			overlap.Store(true)
		}
		time.Sleep(20 * time.Millisecond)
		active.Add(-1)
		calls.Add(1)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("paths:\n  logs: ./logs\n"), 0o644))
		time.Sleep(debounce + 50*time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)
	assert.False(t, overlap.Load(), "onReload calls overlapped")
}
