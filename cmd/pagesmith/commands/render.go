package commands

import (
	"fmt"

	"git.home.luguber.info/inful/pagesmith/internal/config"
	"git.home.luguber.info/inful/pagesmith/internal/pipeline"
)

// RenderCmd implements the 'render' command: generation only, no external commands.
type RenderCmd struct {
	Assets  string `help:"Source asset directory" default:"${assets_dir}"`
	Project string `help:"Project directory (defaults to the configured project name)"`

	RunOutputs `embed:""`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := g.loadConfig(root.Config)
	if err != nil {
		return err
	}
	plan, err := renderPlan(g, cfg, r.Assets, r.Project)
	if err != nil {
		return err
	}

	ctx, stop := g.signalContext()
	defer stop()

	rec := r.recorder()
	rs, err := g.orchestrator(rec).Render(ctx, plan)
	r.write(g, rs, rec)
	if err != nil {
		return stageFailure(err)
	}
	_, _ = fmt.Fprintf(g.stdout(), "Rendered %d files and %d assets into %s\n", len(rs.Written), len(rs.Manifest), plan.ProjectDir)
	return nil
}

func renderPlan(g *Global, cfg *config.Config, assetsDir, projectDir string) (*pipeline.Plan, error) {
	return pipeline.NewPlanBuilder(cfg).
		WithWorkDir(g.workDir()).
		WithAssetsDir(assetsDir).
		WithProjectDir(g.resolve(projectDir)).
		WithIgnoreFile("").
		Build()
}
