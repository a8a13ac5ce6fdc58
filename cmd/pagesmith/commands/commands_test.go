package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagesmith/internal/config"
	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/runner"
)

type env struct {
	dir string
	out *bytes.Buffer
	rec *runner.Recorder
	g   *Global
	cli *CLI
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, config.Init(filepath.Join(dir, "config.json"), false))
	out := &bytes.Buffer{}
	rec := runner.NewRecorder()
	return &env{
		dir: dir,
		out: out,
		rec: rec,
		g:   &Global{WorkDir: dir, Stdout: out, Runner: rec, Starter: rec},
		cli: &CLI{Config: "config.json"},
	}
}

func (e *env) projectDir() string { return filepath.Join(e.dir, "landing-page") }

func TestCreate_FullRun(t *testing.T) {
	e := newEnv(t)
	reportPath := filepath.Join(e.dir, "out", "report.json")
	metricsPath := filepath.Join(e.dir, "pagesmith.prom")
	cmd := &CreateCmd{
		Assets:     "assets",
		IgnoreFile: ".gitignore",
		RunOutputs: RunOutputs{Report: reportPath, MetricsFile: metricsPath},
	}

	require.NoError(t, cmd.Run(e.g, e.cli))

	assert.Len(t, e.rec.Commands(), 6)
	assert.Len(t, e.rec.Started(), 1)
	assert.FileExists(t, filepath.Join(e.projectDir(), "app", "page.tsx"))
	assert.FileExists(t, filepath.Join(e.dir, ".gitignore"))
	assert.Contains(t, e.out.String(), "Project landing-page generated in")

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), `"outcome": "success"`)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `pagesmith_run_outcomes_total{outcome="success"} 1`)
}

func TestCreate_NoLaunch(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, (&CreateCmd{NoLaunch: true, Assets: "assets"}).Run(e.g, e.cli))
	assert.Empty(t, e.rec.Started())
	assert.NoFileExists(t, filepath.Join(e.dir, ".gitignore"), "empty ignore file flag skips the update")
}

func TestCreate_FailingStepNamesStage(t *testing.T) {
	e := newEnv(t)
	e.rec.FailOn("shadcn@latest init", 1)
	reportPath := filepath.Join(e.dir, "report.json")

	err := (&CreateCmd{Assets: "assets", IgnoreFile: ".gitignore", RunOutputs: RunOutputs{Report: reportPath}}).Run(e.g, e.cli)
	require.Error(t, err)

	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, "stage init_ui_library failed", ce.Message())
	assert.Equal(t, ferrors.CategoryExternal, ce.Category())

	var exitErr *runner.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitStatus)

	assert.NoDirExists(t, filepath.Join(e.projectDir(), "components"))
	report, rerr := os.ReadFile(reportPath)
	require.NoError(t, rerr)
	assert.Contains(t, string(report), `"outcome": "failed"`)

	adapter := ferrors.NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.Equal(t, 1, adapter.ExitCodeFor(err))
	assert.True(t, strings.HasPrefix(adapter.FormatError(err), "Error: stage init_ui_library failed: "))
}

func TestCreate_ConfigNotFound(t *testing.T) {
	e := newEnv(t)
	e.cli.Config = "missing.json"
	err := (&CreateCmd{}).Run(e.g, e.cli)
	require.ErrorIs(t, err, config.ErrNotFound)
	assert.Empty(t, e.rec.Commands())
}

func TestCreate_Canceled(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e.g.Context = ctx

	err := (&CreateCmd{Assets: "assets"}).Run(e.g, e.cli)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ferrors.CategoryCanceled, ferrors.GetCategory(err))
}

func TestRender(t *testing.T) {
	e := newEnv(t)
	cmd := &RenderCmd{Assets: "assets"}

	err := cmd.Run(e.g, e.cli)
	require.Error(t, err, "project directory must exist")
	assert.Equal(t, ferrors.CategoryFileSystem, ferrors.GetCategory(err))

	require.NoError(t, os.MkdirAll(e.projectDir(), 0o755))
	require.NoError(t, cmd.Run(e.g, e.cli))
	assert.FileExists(t, filepath.Join(e.projectDir(), "components", "FAQSection.tsx"))
	assert.Contains(t, e.out.String(), "Rendered 9 files and 0 assets")
	assert.Empty(t, e.rec.Commands())
}

func TestRender_ProjectOverride(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(e.dir, "site"), 0o755))

	require.NoError(t, (&RenderCmd{Assets: "assets", Project: "site"}).Run(e.g, e.cli))
	assert.FileExists(t, filepath.Join(e.dir, "site", "app", "layout.tsx"))
}

func TestWatch_RendersUntilCanceled(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.MkdirAll(e.projectDir(), 0o755))
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	e.g.Context = ctx

	require.NoError(t, (&WatchCmd{Assets: "assets", Debounce: 10 * time.Millisecond}).Run(e.g, e.cli))
	assert.FileExists(t, filepath.Join(e.projectDir(), "app", "page.tsx"))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	out := &bytes.Buffer{}
	g := &Global{WorkDir: dir, Stdout: out}
	root := &CLI{Config: "site.yaml"}

	require.NoError(t, (&InitCmd{}).Run(g, root))
	assert.Contains(t, out.String(), "site.yaml")

	cfg, err := config.Load(filepath.Join(dir, "site.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "landing-page", cfg.ProjectName)

	assert.Error(t, (&InitCmd{}).Run(g, root))
	assert.NoError(t, (&InitCmd{Force: true}).Run(g, root))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, LogLevel(" WARN "))
	assert.Equal(t, slog.LevelError, LogLevel("error"))
	assert.Equal(t, slog.LevelInfo, LogLevel(""))
	assert.Equal(t, slog.LevelInfo, LogLevel("loud"))
}

func TestStageFailurePassesOtherErrors(t *testing.T) {
	err := config.ErrMalformed
	assert.Equal(t, err, stageFailure(err))
}
