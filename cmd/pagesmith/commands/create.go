package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/pagesmith/internal/assets"
	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/pipeline"
	"git.home.luguber.info/inful/pagesmith/internal/project"
	"git.home.luguber.info/inful/pagesmith/internal/runner"
)

// CreateCmd implements the 'create' command.
type CreateCmd struct {
	NoLaunch   bool   `name:"no-launch" help:"Do not start the dev server after generating the sources"`
	Assets     string `help:"Source asset directory" default:"${assets_dir}"`
	IgnoreFile string `name:"ignore-file" help:"Ignore list the project directory is added to; empty skips the update" default:"${ignore_file}"`

	RunOutputs `embed:""`
}

// Vars are the kong interpolation variables used by the command definitions.
func Vars() map[string]string {
	return map[string]string{
		"assets_dir":  assets.DefaultSourceDir,
		"ignore_file": project.DefaultIgnoreFile,
	}
}

func (c *CreateCmd) Run(g *Global, root *CLI) error {
	cfg, err := g.loadConfig(root.Config)
	if err != nil {
		return err
	}
	plan, err := pipeline.NewPlanBuilder(cfg).
		WithWorkDir(g.workDir()).
		WithAssetsDir(c.Assets).
		WithIgnoreFile(c.IgnoreFile).
		WithLaunch(!c.NoLaunch).
		Build()
	if err != nil {
		return err
	}

	ctx, stop := g.signalContext()
	defer stop()

	rec := c.recorder()
	rs, err := g.orchestrator(rec).Create(ctx, plan)
	c.write(g, rs, rec)
	if err != nil {
		return stageFailure(err)
	}

	_, _ = fmt.Fprintf(g.stdout(), "Project %s generated in %s\n", cfg.ProjectName, plan.ProjectDir)
	if rs.Process == nil {
		return nil
	}
	_, _ = fmt.Fprintln(g.stdout(), "Dev server running; press Ctrl+C to stop")
	return waitForProcess(ctx, rs.Process)
}

// signalContext is canceled on SIGINT or SIGTERM.
func (g *Global) signalContext() (context.Context, context.CancelFunc) {
	parent := context.Background()
	if g != nil && g.Context != nil {
		parent = g.Context
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// waitForProcess blocks until the dev server exits or ctx is canceled. An
// interrupt is the normal way to stop the server and is not an error.
func waitForProcess(ctx context.Context, proc runner.Process) error {
	done := make(chan error, 1)
	go func() { done <- proc.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("dev server exited: %w", err)
		}
		slog.Info("Dev server exited")
		return nil
	case <-ctx.Done():
		slog.Info("Interrupted; stopping dev server", slog.Int("pid", proc.Pid()))
		if err := <-done; err != nil {
			slog.Debug("Dev server stopped", logfields.Error(err))
		}
		return nil
	}
}
