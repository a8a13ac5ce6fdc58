package pipeline

import (
	"git.home.luguber.info/inful/pagesmith/internal/assets"
	"git.home.luguber.info/inful/pagesmith/internal/metrics"
	"git.home.luguber.info/inful/pagesmith/internal/project"
	"git.home.luguber.info/inful/pagesmith/internal/runner"
)

// RunState carries the plan and everything the stages produce during one run.
type RunState struct {
	Plan  *Plan
	RunID string

	IgnoreResult project.IgnoreResult
	Manifest     assets.Manifest
	Artifacts    []project.Artifact
	Written      []string
	// Process is the dev server, set once the launch stage has started it.
	Process runner.Process

	Report *RunReport

	runner   runner.Runner
	starter  runner.Starter
	observer Observer
	recorder metrics.Recorder
}
