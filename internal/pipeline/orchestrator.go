package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/metrics"
	"git.home.luguber.info/inful/pagesmith/internal/observability"
	"git.home.luguber.info/inful/pagesmith/internal/runner"
)

// Orchestrator runs pipelines against a Runner and a Starter.
type Orchestrator struct {
	runner    runner.Runner
	starter   runner.Starter
	recorder  metrics.Recorder
	observers []Observer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRunner sets the Runner used for external commands.
func WithRunner(r runner.Runner) Option {
	return func(o *Orchestrator) { o.runner = r }
}

// WithStarter sets the Starter used to launch the dev server.
func WithStarter(s runner.Starter) Option {
	return func(o *Orchestrator) { o.starter = s }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithObserver adds an observer notified after the metrics observer.
func WithObserver(ob Observer) Option {
	return func(o *Orchestrator) { o.observers = append(o.observers, ob) }
}

// New creates an Orchestrator that executes real processes and records no metrics.
func New(opts ...Option) *Orchestrator {
	exec := runner.NewExecRunner()
	o := &Orchestrator{runner: exec, starter: exec, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CreateStages lists the stages of a full run for plan.
func CreateStages(plan *Plan) []StageDef {
	tc := plan.Toolchain
	p := NewPipeline().
		Add(StageScaffoldProject, externalStage(StageScaffoldProject, scaffoldCommand)).
		AddIf(plan.IgnoreFile != "", StageUpdateIgnoreList, updateIgnoreList).
		Add(StageInitUILibrary, externalStage(StageInitUILibrary, initUILibraryCommand))
	for _, c := range tc.Components {
		name := AddComponentStage(c)
		p.Add(name, externalStage(name, addComponentCommand(c)))
	}
	return p.
		AddIf(len(tc.Dependencies) > 0, StageInstallDependencies, externalStage(StageInstallDependencies, installDependenciesCommand)).
		Add(StageCopyAssets, copyAssets).
		Add(StageGenerateArtifacts, generateArtifacts).
		Add(StageWriteArtifacts, writeArtifacts).
		AddIf(plan.Launch, StageLaunchDevServer, launchDevServer).
		Build()
}

// RenderStages lists the generation-only stages: no external command runs and
// the project directory must already exist.
func RenderStages(*Plan) []StageDef {
	return NewPipeline().
		Add(StageVerifyProject, verifyProject).
		Add(StageCopyAssets, copyAssets).
		Add(StageGenerateArtifacts, generateArtifacts).
		Add(StageWriteArtifacts, writeArtifacts).
		Build()
}

// Create runs the full pipeline for plan.
func (o *Orchestrator) Create(ctx context.Context, plan *Plan) (*RunState, error) {
	return o.Run(ctx, plan, CreateStages(plan))
}

// Render runs the generation-only pipeline for plan.
func (o *Orchestrator) Render(ctx context.Context, plan *Plan) (*RunState, error) {
	return o.Run(ctx, plan, RenderStages(plan))
}

// Run executes stages for plan. The returned state is never nil; its report
// is finished whether or not the run succeeded.
func (o *Orchestrator) Run(ctx context.Context, plan *Plan, stages []StageDef) (*RunState, error) {
	runID := uuid.NewString()
	obs := append(observers{RecorderObserver{Recorder: o.recorder}}, o.observers...)
	rs := &RunState{
		Plan:     plan,
		RunID:    runID,
		Report:   NewRunReport(runID, plan.Config.ProjectName),
		runner:   o.runner,
		starter:  o.starter,
		observer: obs,
		recorder: o.recorder,
	}

	ctx = observability.WithProject(observability.WithRunID(ctx, runID), plan.Config.ProjectName)
	observability.InfoContext(ctx, "Run started", logfields.Dir(plan.ProjectDir), logfields.Count(len(stages)))

	err := RunStages(ctx, rs, stages)

	rs.Report.Finish()
	rs.Report.DeriveOutcome()
	obs.OnRunComplete(rs.Report)
	observability.InfoContext(ctx, "Run finished", slog.String("summary", rs.Report.Summary()))
	return rs, err
}
