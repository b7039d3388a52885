package project

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devkit-labs/devkit/internal/manifest"
)

func TestInit_CreatesLayout(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	if err := Init(&out, dir, "my-app"); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	for _, sub := range []string{"src/services", "src/utils", "tests/services", "tests/utils"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil {
			t.Errorf("expected directory %s: %v", sub, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", sub)
		}
	}

	m, err := manifest.ParseDir(dir)
	if err != nil {
		t.Fatalf("parsing written manifest: %v", err)
	}
	if m.Name != "my-app" {
		t.Errorf("manifest name = %q, want %q", m.Name, "my-app")
	}

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if !strings.Contains(string(gitignore), "node_modules/") {
		t.Errorf(".gitignore missing node_modules entry:\n%s", gitignore)
	}

	if !strings.Contains(out.String(), "[ OK ] Created") {
		t.Errorf("output missing creation messages:\n%s", out.String())
	}
}

func TestInit_Idempotent(t *testing.T) {
	dir := t.TempDir()

	if err := Init(new(bytes.Buffer), dir, "my-app"); err != nil {
		t.Fatalf("first Init() error: %v", err)
	}

	manifestBefore, err := os.ReadFile(filepath.Join(dir, manifest.ManifestFile))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}

	var out bytes.Buffer
	if err := Init(&out, dir, "renamed-app"); err != nil {
		t.Fatalf("second Init() error: %v", err)
	}

	if strings.Contains(out.String(), "[ OK ] Created") {
		t.Errorf("rerun should skip everything, got:\n%s", out.String())
	}

	// The manifest keeps its original content, including the original name.
	manifestAfter, err := os.ReadFile(filepath.Join(dir, manifest.ManifestFile))
	if err != nil {
		t.Fatalf("reading manifest after rerun: %v", err)
	}
	if !bytes.Equal(manifestBefore, manifestAfter) {
		t.Error("rerun modified the existing manifest")
	}
}

func TestEnsureGitignoreBlock_PreservesUserContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("*.log"), 0644); err != nil {
		t.Fatalf("seeding .gitignore: %v", err)
	}

	added, err := EnsureGitignoreBlock(dir)
	if err != nil {
		t.Fatalf("EnsureGitignoreBlock() error: %v", err)
	}
	if !added {
		t.Error("expected the block to be added")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "*.log\n") {
		t.Errorf("user content lost or newline missing:\n%s", text)
	}
	if !strings.Contains(text, gitignoreMarker) {
		t.Errorf("marker missing:\n%s", text)
	}
}

func TestEnsureGitignoreBlock_Idempotent(t *testing.T) {
	dir := t.TempDir()

	if _, err := EnsureGitignoreBlock(dir); err != nil {
		t.Fatalf("first EnsureGitignoreBlock() error: %v", err)
	}
	before, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))

	added, err := EnsureGitignoreBlock(dir)
	if err != nil {
		t.Fatalf("second EnsureGitignoreBlock() error: %v", err)
	}
	if added {
		t.Error("second run should not add the block again")
	}

	after, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if !bytes.Equal(before, after) {
		t.Error("second run changed the file")
	}
}
