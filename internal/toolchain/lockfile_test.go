package toolchain

import (
	"os"
	"path/filepath"
	"testing"
)

func touchFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0644); err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
}

func TestDetectLockfileHint(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  Tool
	}{
		{"bun binary lockfile", []string{"bun.lockb"}, Bun},
		{"bun text lockfile", []string{"bun.lock"}, Bun},
		{"pnpm", []string{"pnpm-lock.yaml"}, Pnpm},
		{"yarn", []string{"yarn.lock"}, Yarn},
		{"npm", []string{"package-lock.json"}, Npm},
		{"priority order wins", []string{"package-lock.json", "bun.lockb"}, Bun},
		{"pnpm beats yarn", []string{"yarn.lock", "pnpm-lock.yaml"}, Pnpm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				touchFile(t, dir, f)
			}

			signal, ok := DetectLockfileHint(dir)
			if !ok {
				t.Fatal("expected a lockfile hint, got none")
			}
			if signal.Tool != tt.want {
				t.Errorf("hint tool = %q, want %q", signal.Tool, tt.want)
			}
		})
	}
}

func TestDetectLockfileHint_None(t *testing.T) {
	dir := t.TempDir()
	touchFile(t, dir, "package.json")

	if signal, ok := DetectLockfileHint(dir); ok {
		t.Errorf("expected no hint, got %+v", signal)
	}
}
