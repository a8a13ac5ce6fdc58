package pipeline

import (
	"errors"
	"path/filepath"

	"git.home.luguber.info/inful/pagesmith/internal/assets"
	"git.home.luguber.info/inful/pagesmith/internal/config"
	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/project"
)

// Plan is the immutable input of a run, resolved from the configuration and
// the invocation options before any stage executes.
type Plan struct {
	Config    *config.Config
	Toolchain config.Toolchain

	// WorkDir is the invocation directory: the scaffold command runs here and
	// relative paths below are resolved against it.
	WorkDir string
	// ProjectDir is WorkDir/projectName unless overridden.
	ProjectDir string
	AssetsDir  string
	// IgnoreFile is the ignore list the project directory is added to; empty
	// disables the update.
	IgnoreFile string
	Launch     bool
}

// PlanBuilder constructs a Plan.
type PlanBuilder struct {
	plan Plan
}

// NewPlanBuilder creates a builder with the invocation defaults: current
// directory, default asset directory and ignore file, no launch.
func NewPlanBuilder(cfg *config.Config) *PlanBuilder {
	return &PlanBuilder{plan: Plan{
		Config:     cfg,
		WorkDir:    ".",
		AssetsDir:  assets.DefaultSourceDir,
		IgnoreFile: project.DefaultIgnoreFile,
	}}
}

// WithWorkDir sets the invocation directory.
func (b *PlanBuilder) WithWorkDir(dir string) *PlanBuilder {
	b.plan.WorkDir = dir
	return b
}

// WithProjectDir overrides the generated project directory.
func (b *PlanBuilder) WithProjectDir(dir string) *PlanBuilder {
	b.plan.ProjectDir = dir
	return b
}

func (b *PlanBuilder) WithAssetsDir(dir string) *PlanBuilder {
	b.plan.AssetsDir = dir
	return b
}

func (b *PlanBuilder) WithIgnoreFile(path string) *PlanBuilder {
	b.plan.IgnoreFile = path
	return b
}

// WithLaunch enables the dev-server launch stage.
func (b *PlanBuilder) WithLaunch(launch bool) *PlanBuilder {
	b.plan.Launch = launch
	return b
}

// Build validates the project name, resolves paths against the work directory
// and fills the toolchain defaults.
func (b *PlanBuilder) Build() (*Plan, error) {
	p := b.plan
	if p.Config == nil {
		return nil, ferrors.InternalError("plan requires a configuration").Build()
	}
	if err := p.Config.RequireProjectName(); err != nil {
		builder := ferrors.WrapError(err, ferrors.CategoryConfig, "invalid configuration").Fatal()
		if errors.Is(err, config.ErrInvalidProjectName) {
			builder = ferrors.WrapError(err, ferrors.CategoryValidation, "invalid configuration").Fatal()
		}
		return nil, builder.WithContext("project", p.Config.ProjectName).Build()
	}
	if p.WorkDir == "" {
		p.WorkDir = "."
	}
	if p.ProjectDir == "" {
		p.ProjectDir = filepath.Join(p.WorkDir, p.Config.ProjectName)
	}
	p.AssetsDir = p.resolve(p.AssetsDir)
	if p.IgnoreFile != "" {
		p.IgnoreFile = p.resolve(p.IgnoreFile)
	}
	p.Toolchain = p.Config.Toolchain.ApplyEnvOverrides().WithDefaults()
	return &p, nil
}

func (p *Plan) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.WorkDir, path)
}

// PublicDir is where collected assets are copied.
func (p *Plan) PublicDir() string {
	return filepath.Join(p.ProjectDir, assets.PublicDir)
}
