package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const oneWorkspace = `
workspaces:
  - id: solo
    label: Solo
    nav:
      - { label: Home, route: /home }
`

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "workspaces.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o600))

	reloaded := make(chan *Config, 4)
	w := NewWatcher(path, func(c *Config) { reloaded <- c }, nil)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("workspaces: [ {"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte(oneWorkspace), 0o600))

	select {
	case cfg := <-reloaded:
		require.Len(t, cfg.Workspaces, 1)
		assert.Equal(t, "solo", cfg.Workspaces[0].ID)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_InvalidFileIgnored(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "workspaces.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o600))

	reloaded := make(chan *Config, 1)
	w := NewWatcher(path, func(c *Config) { reloaded <- c }, nil)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("workspaces: []\n"), 0o600))

	select {
	case <-reloaded:
		t.Fatal("invalid configuration must not be delivered")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	t.Parallel()
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "ws.yaml"), func(*Config) {}, nil)
	err := w.Run(context.Background())
	require.Error(t, err)
}
