package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyFile       = "file"
	KeyView       = "view"
	KeyBlogID     = "blog_id"
	KeyTheme      = "theme"
	KeyOutput     = "output"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func View(id string) slog.Attr        { return slog.String(KeyView, id) }
func BlogID(id string) slog.Attr      { return slog.String(KeyBlogID, id) }
func Theme(class string) slog.Attr    { return slog.String(KeyTheme, class) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
