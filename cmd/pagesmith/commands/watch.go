package commands

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/metrics"
	"git.home.luguber.info/inful/pagesmith/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Assets   string        `help:"Source asset directory" default:"${assets_dir}"`
	Project  string        `help:"Project directory (defaults to the configured project name)"`
	Debounce time.Duration `help:"Quiet period before regenerating" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	orch := g.orchestrator(metrics.NoopRecorder{})
	render := func(ctx context.Context) error {
		// The configuration is reloaded on every change.
		cfg, err := g.loadConfig(root.Config)
		if err != nil {
			return err
		}
		plan, err := renderPlan(g, cfg, w.Assets, w.Project)
		if err != nil {
			return err
		}
		rs, err := orch.Render(ctx, plan)
		if err != nil {
			return stageFailure(err)
		}
		slog.Info("Sources regenerated", logfields.Dir(plan.ProjectDir), logfields.Count(len(rs.Written)))
		return nil
	}

	watcher, err := watch.New(g.resolve(root.Config), g.resolve(w.Assets), render)
	if err != nil {
		return err
	}
	watcher.WithDebounce(w.Debounce)

	ctx, stop := g.signalContext()
	defer stop()
	return watcher.Run(ctx)
}
