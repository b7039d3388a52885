package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devkit-labs/devkit/internal/errdefs"
	"github.com/devkit-labs/devkit/internal/manifest"
)

// layoutDirs is the workspace skeleton: one source and one test directory per
// scaffold kind.
var layoutDirs = []string{
	"src/services",
	"src/utils",
	"tests/services",
	"tests/utils",
}

// Init builds the workspace skeleton in dir: the scaffold directories, a
// devkit.yaml manifest, and a managed .gitignore block. It prints progress
// messages to w. Every step is idempotent; existing items are skipped with a
// message and never modified.
func Init(w io.Writer, dir, name string) error {
	for _, sub := range layoutDirs {
		if err := ensureDir(w, filepath.Join(dir, sub), 0755); err != nil {
			return err
		}
	}

	data, err := manifest.Default(name).Encode()
	if err != nil {
		return err
	}
	manifestPath := filepath.Join(dir, manifest.ManifestFile)
	if err := ensureFile(w, manifestPath, string(data), 0644); err != nil {
		return err
	}

	gitignorePath := filepath.Join(dir, ".gitignore")
	added, err := EnsureGitignoreBlock(dir)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(w, "  [ OK ] Updated %s\n", gitignorePath)
	} else {
		fmt.Fprintf(w, "  [SKIP] %s already managed\n", gitignorePath)
	}

	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return errdefs.Filesystem("path exists but is not a directory", path, nil)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return errdefs.Filesystem("creating directory", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with the given content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return errdefs.Filesystem("creating file", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
