package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zamoon6/greetsync/cmd/greetsync"
	"github.com/zamoon6/greetsync/internal/environment"
	"github.com/zamoon6/greetsync/internal/lifecycle"
	"github.com/zamoon6/greetsync/internal/perf"
)

const (
	perfLifecycleStartup  = "app.lifecycle.startup"
	perfLifecycleExecute  = "app.lifecycle.execute"
	perfLifecycleShutdown = "app.lifecycle.shutdown"
)

type shutdownTrigger string

const (
	shutdownTriggerExit   shutdownTrigger = "exit"
	shutdownTriggerSignal shutdownTrigger = "signal"
)

type runDeps struct {
	execute    func(context.Context) error
	register   func(lifecycle.Handler) lifecycle.HandlerID
	unregister func(lifecycle.HandlerID)
	args       []string
	cwd        string
	defaultDir string
	fs         afero.Fs
	stderr     io.Writer
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	os.Exit(runWithDeps(runDeps{
		execute: func(ctx context.Context) error {
			return greetsync.Execute(ctx, nil)
		},
		register:   lifecycle.Register,
		unregister: lifecycle.Unregister,
		args:       os.Args[1:],
		cwd:        cwd,
		defaultDir: environment.MustLoad().TranslationsDir,
		fs:         afero.NewOsFs(),
		stderr:     os.Stderr,
	}))
}

func runWithDeps(deps runDeps) int {
	if deps.fs == nil {
		deps.fs = afero.NewOsFs()
	}
	if deps.stderr == nil {
		deps.stderr = io.Discard
	}

	perfCfg := perfExportConfigFromArgs(deps.args, deps.cwd, deps.defaultDir)
	if err := perf.Init(perf.Config{Enabled: perfCfg.enabled}); err != nil {
		_, _ = fmt.Fprintf(deps.stderr, "failed to start performance tracing: %v\n", err)
	}
	defer func() {
		_ = perf.Shutdown(context.Background())
	}()

	ctx := context.Background()
	_, startupSpan := perf.StartSpan(ctx, perfLifecycleStartup)

	var shutdownOnce sync.Once
	shutdown := func(trigger shutdownTrigger, sig os.Signal) {
		shutdownOnce.Do(func() {
			attrs := []attribute.KeyValue{attribute.String("trigger", string(trigger))}
			if sig != nil {
				attrs = append(attrs, attribute.String("signal", sig.String()))
			}
			_, span := perf.StartSpan(ctx, perfLifecycleShutdown, attrs...)
			span.End()

			exportPerf(deps, perfCfg)
		})
	}

	handlerID := deps.register(func(sig os.Signal) {
		shutdown(shutdownTriggerSignal, sig)
	})
	defer deps.unregister(handlerID)
	startupSpan.End()

	execCtx, executeSpan := perf.StartSpan(ctx, perfLifecycleExecute)
	err := deps.execute(execCtx)
	executeSpan.SetAttributes(attribute.Bool("success", err == nil))
	executeSpan.End()

	shutdown(shutdownTriggerExit, nil)

	if err != nil {
		return 1
	}
	return 0
}

type perfExportConfig struct {
	enabled bool
	debug   bool
	baseDir string
	outDir  string
}

// perfExportConfigFromArgs reads the perf related flags straight from the command line
// because tracing has to start before cobra parses anything.
func perfExportConfigFromArgs(args []string, cwd string, defaultDir string) perfExportConfig {
	cfg := perfExportConfig{}
	dir := defaultDir
	outDir := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		switch {
		case arg == "--perf":
			cfg.enabled = true
		case arg == "--debug" || arg == "-d":
			cfg.debug = true
		case arg == "--dir" || arg == "-D":
			if i+1 < len(args) {
				dir = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--dir="):
			dir = strings.TrimPrefix(arg, "--dir=")
		case arg == "--perf-out-dir":
			if i+1 < len(args) {
				outDir = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--perf-out-dir="):
			outDir = strings.TrimPrefix(arg, "--perf-out-dir=")
		}
	}

	cfg.baseDir = resolvePath(cwd, dir)
	cfg.outDir = cfg.baseDir
	if outDir != "" {
		if filepath.IsAbs(outDir) {
			cfg.outDir = filepath.Clean(outDir)
		} else {
			cfg.outDir = filepath.Join(cfg.baseDir, outDir)
		}
	}
	return cfg
}

func resolvePath(cwd string, path string) string {
	if path == "" {
		path = "."
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func exportPerf(deps runDeps, cfg perfExportConfig) {
	if !cfg.enabled || !perf.Enabled() {
		return
	}

	spans, err := perf.GetSpans()
	if err != nil {
		_, _ = fmt.Fprintf(deps.stderr, "failed to collect performance spans: %v\n", err)
		return
	}

	path, err := perf.ExportToFile(deps.fs, cfg.outDir, cfg.baseDir, spans)
	if err != nil {
		_, _ = fmt.Fprintf(deps.stderr, "failed to write performance report: %v\n", err)
		return
	}
	if cfg.debug {
		_, _ = fmt.Fprintf(deps.stderr, "performance report written to %s\n", path)
	}
}
