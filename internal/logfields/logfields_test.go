package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers_UseCanonicalKeys(t *testing.T) {
	require.Equal(t, KeyBuildID, BuildID("b1").Key)
	require.Equal(t, KeyStage, Stage("render").Key)
	require.Equal(t, KeyFile, File("about.md").Key)
	require.Equal(t, KeyView, View("about-view").Key)
	require.Equal(t, KeyBlogID, BlogID("2024-01-01").Key)
}

func TestError_NilProducesEmptyValue(t *testing.T) {
	attr := Error(nil)
	require.Equal(t, KeyError, attr.Key)
	require.Equal(t, slog.KindString, attr.Value.Kind())
	require.Empty(t, attr.Value.String())
}

func TestError_NonNilCarriesMessage(t *testing.T) {
	attr := Error(errors.New("boom"))
	require.Equal(t, "boom", attr.Value.String())
}
