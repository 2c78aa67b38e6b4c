package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Core")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	triggered := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, nil, []string{dir}, 10*time.Millisecond, func() {
			select {
			case triggered <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "main.c"), []byte("int main(){}"), 0o644))

	select {
	case <-triggered:
	case <-time.After(3 * time.Second):
		t.Fatal("watch callback was not invoked after file write")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop on context cancellation")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), nil, []string{filepath.Join(t.TempDir(), "absent")}, 0, func() {})
	require.Error(t, err)
}
