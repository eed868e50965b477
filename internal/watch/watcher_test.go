package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	testDebounce = 100 * time.Millisecond
	waitFor      = 3 * time.Second
	tick         = 10 * time.Millisecond
)

func startWatcher(t *testing.T, root string) *atomic.Int32 {
	t.Helper()
	var calls atomic.Int32
	w := New(root, testDebounce, nopLogger{}, func() { calls.Add(1) })
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })
	return &calls
}

func TestWatcher_TriggersOnCreate(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "01 - Тень.mp3"), []byte("x"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, tick)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	for i := 0; i < 5; i++ {
		name := filepath.Join(root, string(rune('a'+i))+".mp3")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, tick)
	time.Sleep(4 * testDebounce)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	album := filepath.Join(root, "2001 - Тень")
	require.NoError(t, os.Mkdir(album, 0o755))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, tick)

	before := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(album, "01 - Тень.mp3"), []byte("x"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() > before }, waitFor, tick)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := New(t.TempDir(), testDebounce, nopLogger{}, func() {})
	require.NoError(t, w.Start())
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_RunReturnsOnCancel(t *testing.T) {
	w := New(t.TempDir(), testDebounce, nopLogger{}, func() {})
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_StartFailsOnMissingRoot(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), testDebounce, nopLogger{}, func() {})
	assert.Error(t, w.Start())
}
