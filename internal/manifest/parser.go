package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Parse reads and decodes a project manifest from a YAML file.
func Parse(path string) (*ProjectManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m ProjectManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &m, nil
}

// ParseDir loads <dir>/devkit.yaml.
func ParseDir(dir string) (*ProjectManifest, error) {
	return Parse(filepath.Join(dir, ManifestFile))
}

// Exists reports whether a manifest is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ManifestFile))
	return err == nil
}

// Encode renders the manifest as YAML.
func (m *ProjectManifest) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
