// Package assets copies the image files of the operator's asset directory into
// the generated project's public directory and reports what it copied.
package assets

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/fsutil"
	"git.home.luguber.info/inful/pagesmith/internal/logfields"
)

// DefaultSourceDir is the asset directory looked up in the invocation directory.
const DefaultSourceDir = "assets"

// PublicDir is the static asset directory inside the generated project.
const PublicDir = "public"

// imageExtensions is the allow-list, compared case-insensitively.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Manifest is the ordered list of copied file names.
type Manifest []string

// Images returns the manifest as public URL paths ("/hero.png").
func (m Manifest) Images() []string {
	out := make([]string, 0, len(m))
	for _, name := range m {
		out = append(out, "/"+name)
	}
	return out
}

// IsImage reports whether name has an allow-listed image extension.
func IsImage(name string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(name)))
}

// Collect copies every regular image file directly inside sourceDir into
// targetDir and returns their names in directory enumeration order. A missing
// sourceDir yields an empty manifest. Directories, symlinks and other
// non-regular entries are skipped and never followed.
func Collect(sourceDir, targetDir string) (Manifest, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("No asset directory found, skipping asset copy", logfields.Dir(sourceDir))
			return Manifest{}, nil
		}
		return nil, ferrors.NewIOError(sourceDir, err)
	}

	if err := os.MkdirAll(targetDir, 0o750); err != nil {
		return nil, ferrors.NewIOError(targetDir, err)
	}

	manifest := Manifest{}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			slog.Debug("Skipping non-regular asset entry", logfields.File(name))
			continue
		}
		if !IsImage(name) {
			slog.Debug("Skipping non-image asset", logfields.File(name))
			continue
		}

		src := filepath.Join(sourceDir, name)
		dst := filepath.Join(targetDir, name)
		if err := fsutil.CopyFileAtomic(src, dst, 0o644); err != nil {
			return nil, ferrors.NewIOError(dst, err)
		}
		manifest = append(manifest, name)
		slog.Debug("Copied asset", logfields.File(name), logfields.Path(dst))
	}

	slog.Info("Assets copied", logfields.Dir(targetDir), logfields.Count(len(manifest)))
	return manifest, nil
}
