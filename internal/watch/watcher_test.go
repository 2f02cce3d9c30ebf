package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_DetectsWatchedFileWrite(t *testing.T) {
	dir := t.TempDir()
	income := filepath.Join(dir, "income.yml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(income, []byte("initial"), 0600))

	var (
		count atomic.Int32
		mu    sync.Mutex
		last  ChangeEvent
	)
	w, err := NewFileWatcher([]string{income}, 50*time.Millisecond, func(e ChangeEvent) {
		count.Add(1)
		mu.Lock()
		last = e
		mu.Unlock()
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0600))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), count.Load(), "unwatched files are ignored")

	require.NoError(t, os.WriteFile(income, []byte("modified"), 0600))
	require.Eventually(t, func() bool { return count.Load() > 0 }, 2*time.Second, 20*time.Millisecond)

	mu.Lock()
	assert.Equal(t, filepath.Base(income), filepath.Base(last.Path))
	assert.NotEmpty(t, last.ChangeType)
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewFileWatcher_Errors(t *testing.T) {
	_, err := NewFileWatcher(nil, 0, nil)
	assert.Error(t, err)

	_, err = NewFileWatcher([]string{filepath.Join(t.TempDir(), "missing", "tax.yml")}, 0, nil)
	assert.Error(t, err, "parent directory must exist")
}

func TestOpToChangeType(t *testing.T) {
	assert.Equal(t, "create", opToChangeType(fsnotify.Create))
	assert.Equal(t, "write", opToChangeType(fsnotify.Write))
	assert.Equal(t, "remove", opToChangeType(fsnotify.Remove))
	assert.Equal(t, "rename", opToChangeType(fsnotify.Rename))
	assert.Equal(t, "", opToChangeType(fsnotify.Chmod))
}
