// Package project owns the generated project's file tree and the invocation
// directory's ignore list.
package project

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/fsutil"
	"git.home.luguber.info/inful/pagesmith/internal/logfields"
)

// Artifact is one generated source file.
type Artifact struct {
	RelativePath string
	Content      string
}

// ErrPathEscapesRoot indicates an artifact path that is absolute or leaves the project root.
var ErrPathEscapesRoot = errors.New("artifact path escapes project root")

// Write stores every artifact under root, creating parent directories and
// replacing existing files. Each file is written atomically; the batch is not:
// when a write fails, files written earlier in the batch stay on disk.
// It returns the paths written, in order.
func Write(root string, artifacts []Artifact) ([]string, error) {
	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		full, err := resolve(root, a.RelativePath)
		if err != nil {
			return written, err
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			return written, ferrors.NewIOError(filepath.Dir(full), err)
		}
		if err := fsutil.WriteFileAtomic(full, []byte(a.Content), 0o644); err != nil {
			return written, ferrors.NewIOError(full, err)
		}
		slog.Debug("Wrote artifact", logfields.Path(full))
		written = append(written, full)
	}
	return written, nil
}

// resolve joins rel onto root, rejecting paths that would land outside root.
func resolve(root, rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathEscapesRoot)
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesRoot, rel)
	}
	return filepath.Join(root, clean), nil
}
