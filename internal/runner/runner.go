// Package runner executes the external setup tools (scaffolder, UI library
// installer, package manager, dev server) behind a small interface so the
// pipeline can be exercised without spawning processes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrBinaryNotFound indicates the command executable was not found on PATH.
var ErrBinaryNotFound = errors.New("executable not found")

// Command is one external invocation. Dir is the working directory; empty means
// the current process directory. There is no ambient chdir anywhere.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`*?") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Result is the observed outcome of a finished command.
type Result struct {
	ExitCode int
}

// Runner runs a command to completion.
//
// A process that runs and exits non-zero is reported through Result.ExitCode
// with a nil error; the error return is reserved for failures to execute at all
// (binary missing, context canceled, I/O failure).
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// Process is a started, long-running command.
type Process interface {
	Wait() error
	Pid() int
}

// Starter launches a command without waiting for it to exit.
type Starter interface {
	Start(ctx context.Context, cmd Command) (Process, error)
}

// ExitError reports an external step that completed with a non-zero status.
type ExitError struct {
	Step       string
	Command    string
	ExitStatus int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("step %s: command %q exited with status %d", e.Step, e.Command, e.ExitStatus)
}
