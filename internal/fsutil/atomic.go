// Package fsutil holds the small filesystem helpers shared by the asset copier
// and the project writer.
package fsutil

import (
	"io"
	"os"
	"path/filepath"
)

const tmpPattern = ".pagesmith-tmp-*"

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename. On failure the previous file, if any, is left untouched
// and no temp file remains. The parent directory must exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return writeAtomic(path, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// CopyFileAtomic copies src to dst byte for byte using the same temp+rename
// strategy as WriteFileAtomic.
func CopyFileAtomic(src, dst string, perm os.FileMode) error {
	// #nosec G304 -- src is an entry of the operator's asset directory
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()
	return writeAtomic(dst, perm, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

func writeAtomic(path string, perm os.FileMode, fill func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), tmpPattern)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := fill(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	success = true
	return nil
}
