// Package watch re-renders the generated sources whenever the configuration
// file or the asset directory changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/pagesmith/internal/logfields"
)

// DefaultDebounce coalesces bursts of events (editors often write a file in
// several steps) into a single render.
const DefaultDebounce = 300 * time.Millisecond

// RenderFunc performs one render. Errors are logged and watching continues.
type RenderFunc func(ctx context.Context) error

// Watcher monitors the configuration file and the asset directory.
type Watcher struct {
	configPath string
	assetsDir  string
	render     RenderFunc
	debounce   time.Duration
}

// New creates a Watcher for configPath and assetsDir. The asset directory does
// not need to exist yet.
func New(configPath, assetsDir string, render RenderFunc) (*Watcher, error) {
	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	absAssets, err := filepath.Abs(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve assets dir: %w", err)
	}
	return &Watcher{configPath: absConfig, assetsDir: absAssets, render: render, debounce: DefaultDebounce}, nil
}

// WithDebounce sets the quiet period before a render is triggered.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run renders once and then after every relevant change until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			slog.Warn("Closing file watcher failed", logfields.Error(cerr))
		}
	}()

	// Watch the directory rather than the file so atomic saves (rename over)
	// keep being observed.
	configDir := filepath.Dir(w.configPath)
	if err := fw.Add(configDir); err != nil {
		return fmt.Errorf("watch %s: %w", configDir, err)
	}
	w.watchAssets(fw)

	slog.Info("Watching for changes", logfields.File(w.configPath), logfields.Dir(w.assetsDir))
	w.renderOnce(ctx)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Name == w.assetsDir && ev.Has(fsnotify.Create) {
				w.watchAssets(fw)
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("Change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.renderOnce(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) watchAssets(fw *fsnotify.Watcher) {
	fi, err := os.Stat(w.assetsDir)
	if err != nil || !fi.IsDir() {
		return
	}
	if err := fw.Add(w.assetsDir); err != nil {
		slog.Warn("Cannot watch asset directory", logfields.Dir(w.assetsDir), logfields.Error(err))
	}
}

// relevant reports whether ev can change the render output.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	name := filepath.Clean(ev.Name)
	switch {
	case name == w.configPath:
		return true
	case name == w.assetsDir:
		return true
	case filepath.Dir(name) == w.assetsDir:
		return true
	}
	return false
}

func (w *Watcher) renderOnce(ctx context.Context) {
	t0 := time.Now()
	if err := w.render(ctx); err != nil {
		slog.Error("Render failed", logfields.Error(err))
		return
	}
	slog.Info("Render complete", logfields.DurationMS(float64(time.Since(t0))/float64(time.Millisecond)))
}
