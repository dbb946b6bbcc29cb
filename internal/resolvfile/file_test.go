package resolvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/resolvctl/internal/resolvconf"
	"github.com/tbckr/resolvctl/internal/testutil"
)

func TestPathFromContents(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     string
	}{
		{"systemd stub only", "nameserver 127.0.0.53\noptions edns0 trust-ad\n", systemdPath},
		{"stub plus real server", "nameserver 127.0.0.53\nnameserver 8.8.8.8\n", DefaultPath},
		{"real servers", "nameserver 8.8.8.8\nnameserver 8.8.4.4\n", DefaultPath},
		{"other loopback", "nameserver 127.0.0.1\n", DefaultPath},
		{"empty file", "", DefaultPath},
		{"unparseable file", "frobnicate\n", DefaultPath},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pathFromContents([]byte(tc.contents)))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resolv.conf")
		require.NoError(t, os.WriteFile(path, []byte("nameserver 9.9.9.9\nsearch example.com\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Len(t, cfg.Nameservers, 1)
		assert.Equal(t, "9.9.9.9", cfg.Nameservers[0].String())
		assert.Equal(t, []string{"example.com"}, cfg.Search)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("parse error keeps line number", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resolv.conf")
		require.NoError(t, os.WriteFile(path, []byte("nameserver 9.9.9.9\nbogus\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, resolvconf.ErrInvalidDirective)

		var perr *resolvconf.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 1, perr.Line)
		assert.Contains(t, err.Error(), path)
	})
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	require.NoError(t, os.WriteFile(path, []byte("nameserver 1.1.1.1\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, testutil.NopLogger(), func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("nameserver 8.8.8.8\n"), 0o644))

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("watcher did not report the change")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
