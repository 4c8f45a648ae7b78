package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/thevoxium/vimfolio/internal/build"
	"github.com/thevoxium/vimfolio/internal/config"
	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
	"github.com/thevoxium/vimfolio/internal/preview"
	"github.com/thevoxium/vimfolio/internal/version"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `short:"V" help:"Print version and exit"`

	Build struct {
		Content string `help:"Content directory" default:"content"`
		Output  string `short:"o" help:"Output directory for the generated site" default:"public"`
	} `cmd:"" default:"1" help:"Build the site into a single HTML page"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Preview struct {
		Content string `help:"Content directory" default:"content"`
		Output  string `short:"o" help:"Output directory for the generated site" default:"public"`
		Addr    string `help:"Listen address" default:"localhost:8080"`
	} `cmd:"" help:"Serve the generated site locally and rebuild on changes"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.Vars{"version": version.Version})

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	adapter := siteerrors.NewCLIErrorAdapter(CLI.Verbose, logger)

	var err error
	switch ctx.Command() {
	case "build":
		err = runBuild(logger)
	case "init":
		err = config.Init(CLI.Config, CLI.Init.Force)
	case "preview":
		err = runPreview(logger)
	}

	if err != nil {
		adapter.LogError(err)
		os.Exit(adapter.ExitCodeFor(err))
	}
}

func runBuild(logger *slog.Logger) error {
	_, err := build.Run(build.Options{
		ConfigPath: CLI.Config,
		ContentDir: CLI.Build.Content,
		OutputDir:  CLI.Build.Output,
	}, logger)
	return err
}

func runPreview(logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := preview.NewServer(build.Options{
		ConfigPath: CLI.Config,
		ContentDir: CLI.Preview.Content,
		OutputDir:  CLI.Preview.Output,
	}, CLI.Preview.Addr, logger)

	return server.Run(ctx)
}
