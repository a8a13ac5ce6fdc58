package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagesmith/cmd/pagesmith/commands"
	"git.home.luguber.info/inful/pagesmith/internal/config"
	"git.home.luguber.info/inful/pagesmith/internal/runner"
)

func TestRun_InitThenRefuseOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	g := &commands.Global{WorkDir: dir, Stdout: os.Stderr}

	assert.Equal(t, 0, run([]string{"init", "--config", path}, g))
	assert.FileExists(t, path)
	assert.Equal(t, 1, run([]string{"init", "--config", path}, g))
	assert.Equal(t, 0, run([]string{"init", "--force", "--config", path}, g))
}

func TestRun_MissingConfigExitsOne(t *testing.T) {
	dir := t.TempDir()
	rec := runner.NewRecorder()
	g := &commands.Global{WorkDir: dir, Runner: rec, Starter: rec}

	assert.Equal(t, 1, run([]string{"create", "--config", filepath.Join(dir, "missing.json")}, g))
	assert.Empty(t, rec.Commands())
}

func TestRun_FailingStepExitsOne(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	g := &commands.Global{WorkDir: dir, Stdout: os.Stderr}
	require.Equal(t, 0, run([]string{"init", "--config", path}, g))

	rec := runner.NewRecorder().FailOn("create-next-app", 1)
	g.Runner, g.Starter = rec, rec
	assert.Equal(t, 1, run([]string{"create", "--no-launch", "--config", path}, g))
	assert.Len(t, rec.Commands(), 1)
}

func TestRun_EnvFilesAndOutputsFollowWorkDir(t *testing.T) {
	// Restored to its original state on cleanup; unset so the .env value applies.
	t.Setenv(config.EnvPackageRunner, "")
	require.NoError(t, os.Unsetenv(config.EnvPackageRunner))

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	g := &commands.Global{WorkDir: dir, Stdout: os.Stderr}
	require.Equal(t, 0, run([]string{"init", "--config", path}, g))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(config.EnvPackageRunner+"=bunx\n"), 0o600))

	rec := runner.NewRecorder()
	g.Runner, g.Starter = rec, rec
	args := []string{"create", "--no-launch", "--config", path, "--report", "out/run.json", "--metrics-file", "out/pagesmith.prom"}
	require.Equal(t, 0, run(args, g))

	require.NotEmpty(t, rec.Commands())
	assert.Equal(t, "bunx", rec.Commands()[0].Name)
	assert.FileExists(t, filepath.Join(dir, "out", "run.json"))
	assert.FileExists(t, filepath.Join(dir, "out", "pagesmith.prom"))
}

func TestRun_UnknownFlagExitsOne(t *testing.T) {
	assert.Equal(t, 1, run([]string{"render", "--bogus"}, &commands.Global{WorkDir: t.TempDir()}))
}

func TestNewParser_Defaults(t *testing.T) {
	var cli commands.CLI
	parser, err := newParser(&cli, &commands.Global{})
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{})
	require.NoError(t, err)
	assert.Equal(t, "create", kctx.Command())
	assert.Equal(t, "config.json", cli.Config)
	assert.Equal(t, "assets", cli.Create.Assets)
	assert.Equal(t, ".gitignore", cli.Create.IgnoreFile)
	assert.False(t, cli.Create.NoLaunch)

	cli = commands.CLI{}
	parser, err = newParser(&cli, &commands.Global{})
	require.NoError(t, err)
	kctx, err = parser.Parse([]string{"-v", "create", "--no-launch", "--assets", "img", "--ignore-file="})
	require.NoError(t, err)
	assert.Equal(t, "create", kctx.Command())
	assert.True(t, cli.Verbose)
	assert.True(t, cli.Create.NoLaunch)
	assert.Equal(t, "img", cli.Create.Assets)
	assert.Empty(t, cli.Create.IgnoreFile)
}
