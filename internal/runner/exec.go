package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"git.home.luguber.info/inful/pagesmith/internal/logfields"
)

// ExecRunner runs commands with os/exec, streaming their output to the
// configured writers so interactive tools stay visible to the operator.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner attached to the process standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) command(ctx context.Context, c Command) (*exec.Cmd, error) {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBinaryNotFound, c.Name, err)
	}
	if c.Dir != "" {
		if stat, err := os.Stat(c.Dir); err != nil {
			return nil, fmt.Errorf("working directory not found: %w", err)
		} else if !stat.IsDir() {
			return nil, fmt.Errorf("working directory is not a directory: %s", c.Dir)
		}
	}

	// #nosec G204 -- commands are assembled from the toolchain configuration
	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd, nil
}

// Run executes the command and blocks until it exits.
func (r *ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	cmd, err := r.command(ctx, c)
	if err != nil {
		return Result{}, err
	}
	slog.Debug("Running external command", logfields.Command(c.String()), logfields.Dir(c.Dir))

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return Result{ExitCode: exitErr.ExitCode()}, nil
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{}, err
	}
	return Result{ExitCode: 0}, nil
}

// Start launches the command and returns once the process is running.
func (r *ExecRunner) Start(ctx context.Context, c Command) (Process, error) {
	cmd, err := r.command(ctx, c)
	if err != nil {
		return nil, err
	}
	slog.Debug("Starting external command", logfields.Command(c.String()), logfields.Dir(c.Dir))
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() error { return p.cmd.Wait() }
func (p *execProcess) Pid() int    { return p.cmd.Process.Pid }
