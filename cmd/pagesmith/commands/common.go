package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pagesmith/internal/config"
	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/metrics"
	"git.home.luguber.info/inful/pagesmith/internal/pipeline"
	"git.home.luguber.info/inful/pagesmith/internal/runner"
)

// Global is shared state bound into every command. Zero values mean the real
// process environment: current directory, stdout, real external commands.
type Global struct {
	WorkDir string
	Stdout  io.Writer
	Runner  runner.Runner
	Starter runner.Starter
	// Context, when set, replaces the signal-aware context of long-running commands.
	Context context.Context
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (.json, .yaml or .yml)" default:"config.json"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Create CreateCmd `cmd:"" default:"withargs" help:"Scaffold the project, generate its sources and start the dev server"`
	Render RenderCmd `cmd:"" help:"Copy assets and regenerate sources into an existing project"`
	Watch  WatchCmd  `cmd:"" help:"Regenerate sources whenever the configuration or assets change"`
	Init   InitCmd   `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; loads .env files from the work directory
// and sets up logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	config.LoadEnvFiles(g.workDir())
	level := LogLevel(os.Getenv(config.EnvLogLevel))
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LogLevel parses debug, info, warn or error; anything else is info.
func LogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// RunOutputs are the optional machine-readable results of a run.
type RunOutputs struct {
	Report      string `help:"Write a JSON run report to this path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format to this path"`
}

func (o RunOutputs) recorder() metrics.Recorder {
	if o.MetricsFile == "" {
		return metrics.NoopRecorder{}
	}
	return metrics.NewPrometheusRecorder(nil)
}

// write persists the report and metrics, resolving relative paths against the
// work directory; failures are logged and do not change the outcome of the run.
func (o RunOutputs) write(g *Global, rs *pipeline.RunState, rec metrics.Recorder) {
	if o.Report != "" && rs != nil {
		path := g.resolve(o.Report)
		if err := rs.Report.Persist(path); err != nil {
			slog.Warn("Failed to write run report", logfields.Path(path), logfields.Error(err))
		}
	}
	if pr, ok := rec.(*metrics.PrometheusRecorder); ok && o.MetricsFile != "" {
		path := g.resolve(o.MetricsFile)
		if err := pr.WriteTextfile(path); err != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(path), logfields.Error(err))
		}
	}
}

func (g *Global) workDir() string {
	if g == nil || g.WorkDir == "" {
		return "."
	}
	return g.WorkDir
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// resolve interprets a relative path against the work directory.
func (g *Global) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(g.workDir(), path)
}

func (g *Global) loadConfig(path string) (*config.Config, error) {
	return config.Load(g.resolve(path))
}

func (g *Global) orchestrator(rec metrics.Recorder) *pipeline.Orchestrator {
	opts := []pipeline.Option{pipeline.WithRecorder(rec)}
	if g != nil && g.Runner != nil {
		opts = append(opts, pipeline.WithRunner(g.Runner))
	}
	if g != nil && g.Starter != nil {
		opts = append(opts, pipeline.WithStarter(g.Starter))
	}
	return pipeline.New(opts...)
}

// stageFailure turns a stage error into a classified error whose message names
// the failing stage, keeping the category of the underlying failure.
func stageFailure(err error) error {
	var se *pipeline.StageError
	if !errors.As(err, &se) {
		return err
	}
	category := ferrors.GetCategory(se.Err)
	if se.Kind == pipeline.StageErrorCanceled {
		category = ferrors.CategoryCanceled
	}
	return ferrors.WrapError(se.Err, category, fmt.Sprintf("stage %s failed", se.Stage)).
		Fatal().
		WithContext("stage", string(se.Stage)).
		Build()
}
