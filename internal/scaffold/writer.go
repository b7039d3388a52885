package scaffold

import (
	"os"
	"path/filepath"

	"github.com/devkit-labs/devkit/internal/errdefs"
)

// Outcome reports what WriteArtifact did with one target path.
type Outcome string

const (
	// Created means the file did not exist and was written.
	Created Outcome = "created"
	// SkippedExisting means the path already existed and was left untouched.
	SkippedExisting Outcome = "skipped"
)

// WriteArtifact writes content to path, creating missing parent directories.
// An existing file is never truncated or merged: the write is skipped and
// reported as SkippedExisting. Any other failure is a filesystem error.
func WriteArtifact(path, content string) (Outcome, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errdefs.Filesystem("creating directory", filepath.Dir(path), err)
	}

	// O_EXCL makes the existence check and the create one atomic step.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return SkippedExisting, nil
		}
		return "", errdefs.Filesystem("creating file", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", errdefs.Filesystem("writing file", path, err)
	}
	if err := f.Close(); err != nil {
		return "", errdefs.Filesystem("closing file", path, err)
	}
	return Created, nil
}
