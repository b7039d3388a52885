//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir string // the workspace commands operate on
	BinDir     string // stub executables; becomes the only PATH entry
}

// setupTestEnv creates isolated temp directories and replaces PATH so the
// only executables visible are the stubs a test installs into BinDir.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables require a POSIX shell")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}
	t.Setenv("PATH", env.BinDir)
	return env
}

// stubTool installs a fake package manager into BinDir. The stub records its
// working directory and arguments into <name>.calls, then exits 0. Returns
// the path of the record file.
func stubTool(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	record := filepath.Join(env.BinDir, name+".calls")
	script := fmt.Sprintf("#!/bin/sh\npwd >> %q\necho \"$@\" >> %q\nexit 0\n", record, record)
	writeExecutable(t, filepath.Join(env.BinDir, name), script)
	return record
}

// stubFailingTool installs a fake package manager that prints a final stderr
// line and exits with the given code.
func stubFailingTool(t *testing.T, env *testEnv, name string, exitCode int, lastLine string) {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\necho resolving packages\necho %q >&2\nexit %d\n", lastLine, exitCode)
	writeExecutable(t, filepath.Join(env.BinDir, name), script)
}

// writeExecutable creates an executable file at the given path.
func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
