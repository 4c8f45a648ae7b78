// Package build runs the generation pipeline: config, content, view
// assembly, rendering, output.
package build

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thevoxium/vimfolio/internal/config"
	"github.com/thevoxium/vimfolio/internal/content"
	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
	"github.com/thevoxium/vimfolio/internal/logfields"
	"github.com/thevoxium/vimfolio/internal/site"
	"github.com/thevoxium/vimfolio/internal/view"
)

// Default input and output locations.
const (
	DefaultConfigPath = "config.yaml"
	DefaultContentDir = "content"
	DefaultOutputDir  = "public"
)

// Options control one pipeline run.
type Options struct {
	ConfigPath string
	ContentDir string
	OutputDir  string
}

func (o *Options) applyDefaults() {
	if o.ConfigPath == "" {
		o.ConfigPath = DefaultConfigPath
	}
	if o.ContentDir == "" {
		o.ContentDir = DefaultContentDir
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
}

// Result summarizes a completed build.
type Result struct {
	BuildID    string
	OutputPath string
	Pages      int
	Posts      int
	Problems   []string
	Duration   time.Duration
}

// Run executes the full pipeline once, front to back. Fatal errors abort
// with a categorized SiteError; per-file content problems only produce
// warnings inside the content stage.
func Run(opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts.applyDefaults()

	buildID := uuid.NewString()
	logger = logger.With(logfields.BuildID(buildID))
	start := time.Now()

	logger.Info("Starting site build",
		"config", opts.ConfigPath,
		"content", opts.ContentDir,
		logfields.Output(opts.OutputDir))

	cfg, err := stage(logger, "config", func() (*config.SiteConfig, error) {
		return config.Load(opts.ConfigPath)
	})
	if err != nil {
		return nil, err
	}

	loader := content.NewLoader(opts.ContentDir, logger)

	pages, err := stage(logger, "content", func() (map[string]content.Page, error) {
		return loader.LoadPages(cfg.Navigation), nil
	})
	if err != nil {
		return nil, err
	}

	var posts []content.BlogPost
	if cfg.HasNavigationTarget(config.ViewBlogsList) {
		posts, err = stage(logger, "blogs", loader.LoadBlogPosts)
		if err != nil {
			return nil, err
		}
	}

	data, err := stage(logger, "assemble", func() (*view.Data, error) {
		return view.Assemble(cfg, pages, posts), nil
	})
	if err != nil {
		return nil, err
	}

	document, err := stage(logger, "render", func() (string, error) {
		return site.Render(cfg, data)
	})
	if err != nil {
		return nil, err
	}

	outputPath, err := stage(logger, "write", func() (string, error) {
		return site.WriteOutput(opts.OutputDir, document)
	})
	if err != nil {
		return nil, err
	}

	problems := site.Verify(document, cfg, data)
	for _, problem := range problems {
		logger.Warn("Output verification problem", "problem", problem)
	}

	result := &Result{
		BuildID:    buildID,
		OutputPath: outputPath,
		Pages:      len(pages),
		Posts:      len(posts),
		Problems:   problems,
		Duration:   time.Since(start),
	}

	logger.Info("Build successful",
		logfields.Output(result.OutputPath),
		"pages", result.Pages,
		"posts", result.Posts,
		logfields.DurationMS(float64(result.Duration.Milliseconds())))

	return result, nil
}

// stage runs one pipeline step with timing and failure logging.
func stage[T any](logger *slog.Logger, name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	value, err := fn()
	elapsed := float64(time.Since(start).Milliseconds())

	if err != nil {
		logger.Error("Stage failed", logfields.Stage(name), logfields.Error(err))
		if siteerrors.IsFatal(err) {
			return value, err
		}
		return value, siteerrors.BuildFailed(name, err)
	}

	logger.Debug("Stage completed", logfields.Stage(name), logfields.DurationMS(elapsed))
	return value, nil
}
