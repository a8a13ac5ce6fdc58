// Package pipeline runs a scaffolding run as an ordered list of named stages:
// the external bootstrap commands, the ignore-list update, asset collection,
// source generation, the write of the generated files and the optional
// dev-server launch. The first failing stage aborts the run.
package pipeline

import (
	"context"
	"fmt"
)

// Stage is a discrete unit of work in a run.
type Stage func(ctx context.Context, rs *RunState) error

// StageName is a strongly-typed identifier for a stage.
type StageName string

// Canonical stage names.
const (
	StageScaffoldProject     StageName = "scaffold_project"
	StageUpdateIgnoreList    StageName = "update_ignore_list"
	StageInitUILibrary       StageName = "init_ui_library"
	StageInstallDependencies StageName = "install_dependencies"
	StageVerifyProject       StageName = "verify_project"
	StageCopyAssets          StageName = "copy_assets"
	StageGenerateArtifacts   StageName = "generate_artifacts"
	StageWriteArtifacts      StageName = "write_artifacts"
	StageLaunchDevServer     StageName = "launch_dev_server"
)

// AddComponentStage names the install stage of one UI library component.
func AddComponentStage(component string) StageName {
	return StageName("add_component_" + component)
}

// StageErrorKind classifies the outcome of a failed stage.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Run must abort.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying the failing stage and the cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// NewFatalStageError creates a new fatal stage error.
func NewFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func NewCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// StageResult captures the high-level outcome of a stage.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
	StageResultSkipped  StageResult = "skipped" // not reached because an earlier stage aborted
)

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// Pipeline is a fluent builder for ordered stage definitions.
type Pipeline struct{ Defs []StageDef }

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline { return &Pipeline{Defs: make([]StageDef, 0, 12)} }

// Add appends a stage unconditionally.
func (p *Pipeline) Add(name StageName, fn Stage) *Pipeline {
	p.Defs = append(p.Defs, StageDef{Name: name, Fn: fn})
	return p
}

// AddIf appends a stage only if cond is true.
func (p *Pipeline) AddIf(cond bool, name StageName, fn Stage) *Pipeline {
	if cond {
		p.Add(name, fn)
	}
	return p
}

// Build returns a copy of the stage definitions.
func (p *Pipeline) Build() []StageDef {
	out := make([]StageDef, len(p.Defs))
	copy(out, p.Defs)
	return out
}

// Names lists the stage names of defs in order.
func Names(defs []StageDef) []StageName {
	out := make([]StageName, len(defs))
	for i, d := range defs {
		out[i] = d.Name
	}
	return out
}
