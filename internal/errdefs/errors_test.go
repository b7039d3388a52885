package errdefs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExitCode_PerKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"environment", Environment("no tool found", nil), 1},
		{"invalid kind", InvalidKind("bogus", []string{"service", "util"}), 2},
		{"filesystem", Filesystem("creating directory", "/tmp/x", errors.New("permission denied")), 3},
		{"plain error", errors.New("something else"), 1},
		{"wrapped environment", fmt.Errorf("setup: %w", Environment("no tool found", nil)), 1},
		{"wrapped filesystem", fmt.Errorf("generate: %w", Filesystem("write", "a/b.ts", errors.New("denied"))), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCommandFailed_Context(t *testing.T) {
	err := CommandFailed("npm install", 7, "ERR! network timeout")

	if err.Kind != KindEnvironment {
		t.Errorf("Kind = %q, want %q", err.Kind, KindEnvironment)
	}
	if err.Context["exit"] != "7" {
		t.Errorf("Context[exit] = %q, want %q", err.Context["exit"], "7")
	}
	if err.Context["output"] != "ERR! network timeout" {
		t.Errorf("Context[output] = %q, want %q", err.Context["output"], "ERR! network timeout")
	}

	msg := err.Error()
	if !strings.Contains(msg, "npm install") {
		t.Errorf("Error() = %q, missing command name", msg)
	}
	if !strings.Contains(msg, "exit=7") {
		t.Errorf("Error() = %q, missing exit code", msg)
	}
}

func TestCommandFailed_NoOutputLine(t *testing.T) {
	err := CommandFailed("yarn install", 1, "")
	if _, ok := err.Context["output"]; ok {
		t.Error("empty last line should not be recorded in context")
	}
}

func TestInvalidKind_Message(t *testing.T) {
	err := InvalidKind("widget", []string{"service", "util"})
	msg := err.Error()
	if !strings.Contains(msg, `"widget"`) {
		t.Errorf("Error() = %q, missing offending kind", msg)
	}
	if !strings.Contains(msg, "service, util") {
		t.Errorf("Error() = %q, missing valid kinds", msg)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", Filesystem("write failed", "x.ts", nil))

	if !IsKind(err, KindFilesystem) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(err, KindEnvironment) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindFilesystem) {
		t.Error("IsKind matched a plain error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Filesystem("writing artifact", "src/services/a.ts", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}
