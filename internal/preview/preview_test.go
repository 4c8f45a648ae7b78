package preview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thevoxium/vimfolio/internal/build"
)

func TestShouldIgnoreEvent(t *testing.T) {
	require.True(t, shouldIgnoreEvent("/tmp/.hidden.md"))
	require.True(t, shouldIgnoreEvent("/tmp/#about.md#"))
	require.True(t, shouldIgnoreEvent("/tmp/about.md.swp"))
	require.True(t, shouldIgnoreEvent("/tmp/about.md~"))
	require.True(t, shouldIgnoreEvent("/tmp/.DS_Store"))
	require.False(t, shouldIgnoreEvent("/tmp/about.md"))
	require.False(t, shouldIgnoreEvent("/tmp/blogs/2024-01-01.md"))
}

func TestNewServer_DefaultAddr(t *testing.T) {
	server := NewServer(build.Options{}, "", nil)
	require.Equal(t, "localhost:8080", server.addr)
}

func TestWatchPaths_IncludesConfigAndContent(t *testing.T) {
	opts := build.Options{ConfigPath: "config.yaml", ContentDir: t.TempDir()}
	server := NewServer(opts, "", nil)

	paths := server.watchPaths()
	require.Contains(t, paths, "config.yaml")
	require.Contains(t, paths, opts.ContentDir)
}
