package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSiteError_Error_IncludesCategoryAndSeverity(t *testing.T) {
	err := New(CategoryConfig, SeverityFatal, "configuration file not found")
	require.Equal(t, "config (fatal): configuration file not found", err.Error())
}

func TestSiteError_Error_IncludesCause(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(cause, CategoryConfig, SeverityFatal, "configuration file not found")
	require.Contains(t, err.Error(), "no such file")
}

func TestSiteError_Unwrap_ReturnsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, CategoryBuild, SeverityFatal, "build failed")
	require.True(t, errors.Is(err, cause))
}

func TestIsCategory_MatchesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("outer: %w", BlogFieldMissing("2024-01-01.md", "title"))
	require.True(t, IsCategory(err, CategoryContent))
	require.False(t, IsCategory(err, CategoryConfig))
}

func TestIsFatal(t *testing.T) {
	require.False(t, IsFatal(nil))
	require.False(t, IsFatal(BlogFieldMissing("x.md", "date")))
	require.True(t, IsFatal(ConfigNotFound("config.yaml")))
	require.True(t, IsFatal(errors.New("plain")))
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	require.Equal(t, 0, adapter.ExitCodeFor(nil))
	require.Equal(t, 7, adapter.ExitCodeFor(ConfigNotFound("config.yaml")))
	require.Equal(t, 2, adapter.ExitCodeFor(ValidationFailed("default_theme", "unknown theme")))
	require.Equal(t, 11, adapter.ExitCodeFor(BuildFailed("render", errors.New("boom"))))
	require.Equal(t, 10, adapter.ExitCodeFor(InternalError("unexpected", errors.New("boom"))))
	require.Equal(t, 1, adapter.ExitCodeFor(errors.New("plain")))
}

func TestCLIErrorAdapter_FormatError_Concise(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)
	msg := adapter.FormatError(ConfigNotFound("config.yaml"))
	require.Equal(t, "configuration file not found", msg)
}

func TestCLIErrorAdapter_FormatError_Verbose(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, nil)
	msg := adapter.FormatError(ConfigNotFound("config.yaml"))
	require.Contains(t, msg, "config (fatal)")
}
