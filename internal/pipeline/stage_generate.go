package pipeline

import (
	"context"
	"errors"
	"os"

	"git.home.luguber.info/inful/pagesmith/internal/assets"
	"git.home.luguber.info/inful/pagesmith/internal/config"
	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/logfields"
	"git.home.luguber.info/inful/pagesmith/internal/observability"
	"git.home.luguber.info/inful/pagesmith/internal/project"
	"git.home.luguber.info/inful/pagesmith/internal/sections"
)

// ErrNotDirectory is reported when the project path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

func updateIgnoreList(ctx context.Context, rs *RunState) error {
	res, err := project.EnsureIgnored(rs.Plan.IgnoreFile, rs.Plan.Config.ProjectName)
	if err != nil {
		return ferrors.FileSystemError(err, "update ignore list").Build()
	}
	rs.IgnoreResult = res
	observability.InfoContext(ctx, "Ignore list checked", logfields.Path(rs.Plan.IgnoreFile), logfields.Result(string(res)))
	return nil
}

// verifyProject requires an existing project directory; the render-only
// pipeline never scaffolds one.
func verifyProject(_ context.Context, rs *RunState) error {
	dir := rs.Plan.ProjectDir
	fi, err := os.Stat(dir)
	if err == nil && !fi.IsDir() {
		err = ErrNotDirectory
	}
	if err != nil {
		return ferrors.FileSystemError(ferrors.NewIOError(dir, err), "project directory not usable").Build()
	}
	return nil
}

func copyAssets(ctx context.Context, rs *RunState) error {
	manifest, err := assets.Collect(rs.Plan.AssetsDir, rs.Plan.PublicDir())
	if err != nil {
		return ferrors.FileSystemError(err, "copy assets").Build()
	}
	rs.Manifest = manifest
	rs.Report.Manifest = manifest
	observability.InfoContext(ctx, "Assets collected", logfields.Dir(rs.Plan.AssetsDir), logfields.Count(len(manifest)))
	return nil
}

// generateArtifacts renders every file before anything is written, so an
// incomplete configuration leaves the project tree untouched.
func generateArtifacts(ctx context.Context, rs *RunState) error {
	artifacts, err := sections.Generate(rs.Plan.Config, rs.Manifest)
	if err != nil {
		var mf *config.MissingFieldError
		if errors.As(err, &mf) {
			return ferrors.ConfigError(err, "incomplete configuration").
				WithContext("section", mf.Section).
				WithContext("field", mf.Field).
				Build()
		}
		return ferrors.GenerationError(err, "generate sources").Build()
	}
	rs.Artifacts = artifacts
	observability.DebugContext(ctx, "Sources generated", logfields.Count(len(artifacts)))
	return nil
}

func writeArtifacts(ctx context.Context, rs *RunState) error {
	written, err := project.Write(rs.Plan.ProjectDir, rs.Artifacts)
	rs.Written = written
	rs.Report.Artifacts = written
	if err != nil {
		return ferrors.FileSystemError(err, "write sources").Build()
	}
	observability.InfoContext(ctx, "Sources written", logfields.Dir(rs.Plan.ProjectDir), logfields.Count(len(written)))
	return nil
}
