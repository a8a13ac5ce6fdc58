package project

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	ferrors "git.home.luguber.info/inful/pagesmith/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesmith/internal/fsutil"
)

// DefaultIgnoreFile is the ignore list in the invocation directory.
const DefaultIgnoreFile = ".gitignore"

const ignoreComment = "# Generated project directory"

// IgnoreResult indicates what happened to the ignore list.
type IgnoreResult string

const (
	IgnoreCreated   IgnoreResult = "created"
	IgnoreUpdated   IgnoreResult = "updated"
	IgnoreUnchanged IgnoreResult = "unchanged"
)

// EnsureIgnored makes sure the ignore list at path excludes the project
// directory dir. A pattern that already matches dir, by gitignore rules, counts
// as a reference and leaves the file untouched, so repeated runs never add a
// second entry. A missing file is created.
func EnsureIgnored(path, dir string) (IgnoreResult, error) {
	// #nosec G304 -- path is the operator's ignore file
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", ferrors.NewIOError(path, err)
	}
	exists := err == nil

	if exists && isIgnored(string(content), dir) {
		return IgnoreUnchanged, nil
	}

	var b strings.Builder
	b.Write(content)
	if len(content) > 0 {
		if !strings.HasSuffix(string(content), "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(ignoreComment + "\n")
	b.WriteString(escapePattern(dir) + "/\n")

	if err := fsutil.WriteFileAtomic(path, []byte(b.String()), 0o644); err != nil {
		return "", ferrors.NewIOError(path, err)
	}
	if !exists {
		return IgnoreCreated, nil
	}
	return IgnoreUpdated, nil
}

// escapePattern quotes dir so the entry matches exactly that name: glob
// characters, backslashes and spaces are escaped, as is a leading '#' or '!'
// that would otherwise make the line a comment or a negation.
func escapePattern(dir string) string {
	var b strings.Builder
	for i, r := range dir {
		switch {
		case strings.ContainsRune(`\*?[] `, r):
			b.WriteByte('\\')
		case i == 0 && (r == '#' || r == '!'):
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isIgnored(content, dir string) bool {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(trimmed, nil))
	}
	if len(patterns) == 0 {
		return false
	}
	return gitignore.NewMatcher(patterns).Match([]string{dir}, true)
}
