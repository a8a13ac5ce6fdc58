package runner

import (
	"context"
	"strings"
	"sync"
)

// Recorder is an in-memory Runner and Starter that records every command it is
// given and answers with scripted exit codes. It never spawns a process.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
	started  []Command
	// ExitCodes maps a substring of the rendered command line to the exit
	// code returned for it. Unmatched commands succeed.
	ExitCodes map[string]int
	// Err, when set, is returned from every Run and Start call.
	Err error
	// OnRun is invoked for every Run call before the result is computed.
	OnRun func(cmd Command)
}

// NewRecorder creates a Recorder where every command succeeds.
func NewRecorder() *Recorder {
	return &Recorder{ExitCodes: map[string]int{}}
}

// FailOn makes commands whose line contains match exit with code.
func (r *Recorder) FailOn(match string, code int) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ExitCodes == nil {
		r.ExitCodes = map[string]int{}
	}
	r.ExitCodes[match] = code
	return r
}

func (r *Recorder) Run(ctx context.Context, cmd Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	onRun := r.OnRun
	r.mu.Unlock()
	if onRun != nil {
		onRun(cmd)
	}
	if r.Err != nil {
		return Result{}, r.Err
	}
	return Result{ExitCode: r.exitCodeFor(cmd)}, nil
}

func (r *Recorder) Start(ctx context.Context, cmd Command) (Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.started = append(r.started, cmd)
	r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	return recordedProcess{}, nil
}

func (r *Recorder) exitCodeFor(cmd Command) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := cmd.String()
	for match, code := range r.ExitCodes {
		if strings.Contains(line, match) {
			return code
		}
	}
	return 0
}

// Commands returns the commands passed to Run, in order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Started returns the commands passed to Start, in order.
func (r *Recorder) Started() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.started))
	copy(out, r.started)
	return out
}

type recordedProcess struct{}

func (recordedProcess) Wait() error { return nil }
func (recordedProcess) Pid() int    { return 0 }
