package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/devkit-labs/devkit/internal/errdefs"
)

// gitignoreMarker heads the managed block so reruns can find it.
const gitignoreMarker = "# devkit"

// gitignoreEntries are the paths the managed block excludes.
var gitignoreEntries = []string{
	"node_modules/",
	"dist/",
	"coverage/",
}

// EnsureGitignoreBlock appends the devkit block to dir/.gitignore unless the
// marker line is already present. Existing user content is preserved; the
// block is only ever appended, never rewritten. Returns true when the block
// was added.
func EnsureGitignoreBlock(dir string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, errdefs.Filesystem("reading .gitignore", path, err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == gitignoreMarker {
			return false, nil // already managed
		}
	}

	var block strings.Builder
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		block.WriteString("\n")
	}
	block.WriteString(gitignoreMarker + "\n")
	for _, entry := range gitignoreEntries {
		block.WriteString(entry + "\n")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, errdefs.Filesystem("opening .gitignore for append", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(block.String()); err != nil {
		return false, errdefs.Filesystem("writing to .gitignore", path, err)
	}

	return true, nil
}
