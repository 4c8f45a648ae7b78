// Package preview serves the generated site locally and rebuilds it when
// the config or content changes. It is development tooling only; the
// generated site itself needs no server.
package preview

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thevoxium/vimfolio/internal/build"
	"github.com/thevoxium/vimfolio/internal/logfields"
)

// debounceWindow coalesces editor save bursts into one rebuild.
const debounceWindow = 200 * time.Millisecond

// Server watches the site inputs and serves the output directory.
type Server struct {
	opts   build.Options
	addr   string
	logger *slog.Logger
}

// NewServer creates a preview server for the given build inputs.
func NewServer(opts build.Options, addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = "localhost:8080"
	}
	return &Server{opts: opts, addr: addr, logger: logger}
}

// Run builds once, then serves and watches until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if _, err := build.Run(s.opts, s.logger); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	for _, path := range s.watchPaths() {
		if err := watcher.Add(path); err != nil {
			s.logger.Warn("Cannot watch path", logfields.File(path), logfields.Error(err))
		}
	}

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           http.FileServer(http.Dir(s.opts.OutputDir)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Preview server listening", "addr", "http://"+s.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	go s.watchLoop(ctx, watcher)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) watchPaths() []string {
	paths := []string{s.opts.ConfigPath, s.opts.ContentDir}
	blogDir := filepath.Join(s.opts.ContentDir, "blogs")
	if info, err := os.Stat(blogDir); err == nil && info.IsDir() {
		paths = append(paths, blogDir)
	}
	return paths
}

func (s *Server) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	var timer *time.Timer
	rebuild := func() {
		s.logger.Info("Change detected, rebuilding")
		if _, err := build.Run(s.opts, s.logger); err != nil {
			s.logger.Error("Rebuild failed", logfields.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if shouldIgnoreEvent(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, rebuild)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// shouldIgnoreEvent filters editor junk files out of the rebuild trigger.
func shouldIgnoreEvent(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return true
	}
	if strings.HasPrefix(name, "#") && strings.HasSuffix(name, "#") {
		return true
	}
	if strings.HasSuffix(name, ".swp") || strings.HasSuffix(name, "~") {
		return true
	}
	return false
}
