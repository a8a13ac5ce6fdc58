package pipeline

import (
	"context"
	"log/slog"

	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/observability"
	"git.home.luguber.info/inful/pagesmith/internal/runner"
)

// externalStage runs the command built by build to completion. A non-zero exit
// becomes a *runner.ExitError naming the stage.
func externalStage(name StageName, build func(p *Plan) runner.Command) Stage {
	return func(ctx context.Context, rs *RunState) error {
		cmd := build(rs.Plan)
		observability.DebugContext(ctx, "Running external command",
			logfields.Command(cmd.String()),
			logfields.Dir(cmd.Dir))

		res, err := rs.runner.Run(ctx, cmd)
		if err != nil {
			return ferrors.ExternalError(err, "run external command").
				WithContext("command", cmd.String()).
				WithContext("dir", cmd.Dir).
				Build()
		}
		if res.ExitCode != 0 {
			exitErr := &runner.ExitError{Step: string(name), Command: cmd.String(), ExitStatus: res.ExitCode}
			return ferrors.ExternalError(exitErr, "external command failed").
				WithContext("exit_status", res.ExitCode).
				Build()
		}
		return nil
	}
}

// scaffoldCommand creates the base project skeleton in the invocation directory.
func scaffoldCommand(p *Plan) runner.Command {
	args := append([]string{p.Toolchain.ScaffoldCommand, p.Config.ProjectName}, p.Toolchain.ScaffoldFlags...)
	return runner.Command{Name: p.Toolchain.PackageRunner, Args: args, Dir: p.WorkDir}
}

func initUILibraryCommand(p *Plan) runner.Command {
	return runner.Command{
		Name: p.Toolchain.PackageRunner,
		Args: []string{p.Toolchain.UILibrary, "init", "-y", "--base-color=" + p.Toolchain.BaseColor},
		Dir:  p.ProjectDir,
	}
}

func addComponentCommand(component string) func(p *Plan) runner.Command {
	return func(p *Plan) runner.Command {
		return runner.Command{
			Name: p.Toolchain.PackageRunner,
			Args: []string{p.Toolchain.UILibrary, "add", component, "--yes"},
			Dir:  p.ProjectDir,
		}
	}
}

func installDependenciesCommand(p *Plan) runner.Command {
	return runner.Command{
		Name: p.Toolchain.PackageManager,
		Args: append([]string{"install"}, p.Toolchain.Dependencies...),
		Dir:  p.ProjectDir,
	}
}

func devServerCommand(p *Plan) runner.Command {
	return runner.Command{
		Name: p.Toolchain.PackageManager,
		Args: []string{"run", p.Toolchain.DevScript},
		Dir:  p.ProjectDir,
	}
}

// launchDevServer starts the dev server and returns as soon as it is running.
// Waiting for it is left to the caller through RunState.Process.
func launchDevServer(ctx context.Context, rs *RunState) error {
	cmd := devServerCommand(rs.Plan)
	observability.DebugContext(ctx, "Starting dev server", logfields.Command(cmd.String()), logfields.Dir(cmd.Dir))
	proc, err := rs.starter.Start(ctx, cmd)
	if err != nil {
		return ferrors.ExternalError(err, "start dev server").
			WithContext("command", cmd.String()).
			Build()
	}
	rs.Process = proc
	observability.InfoContext(ctx, "Dev server started", logfields.Command(cmd.String()), slog.Int("pid", proc.Pid()))
	return nil
}
