package errdefs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an error into one of the fixed failure categories.
type Kind string

const (
	// KindEnvironment covers unresolvable package-management tooling and
	// failed install commands.
	KindEnvironment Kind = "environment"
	// KindInvalidKind covers scaffold kinds outside the fixed enumeration.
	KindInvalidKind Kind = "invalid-kind"
	// KindFilesystem covers directory creation and file write failures other
	// than "already exists".
	KindFilesystem Kind = "filesystem"
)

// Process exit codes, one per kind. Anything unclassified exits 1.
const (
	ExitOK          = 0
	ExitEnvironment = 1
	ExitInvalidKind = 2
	ExitFilesystem  = 3
)

// Error is the structured error carried across package boundaries. Each
// variant holds a human message, a short machine code, the numeric status the
// process will exit with, and an optional context map for diagnostics.
type Error struct {
	Kind    Kind
	Code    string
	Status  int
	Message string
	Context map[string]string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg += " (" + formatContext(e.Context) + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode satisfies the coder interface used by the boundary mapping.
func (e *Error) ExitCode() int {
	if e.Status == 0 {
		return ExitEnvironment
	}
	return e.Status
}

// Environment creates an environment error: no tool resolvable, or an install
// command failed.
func Environment(message string, err error) *Error {
	return &Error{
		Kind:    KindEnvironment,
		Code:    "ENV_UNRESOLVED",
		Status:  ExitEnvironment,
		Message: message,
		Err:     err,
	}
}

// CommandFailed creates an environment error for an external command that
// exited non-zero, recording the exit code and last output line as context.
func CommandFailed(command string, exitCode int, lastLine string) *Error {
	ctx := map[string]string{
		"command": command,
		"exit":    fmt.Sprintf("%d", exitCode),
	}
	if lastLine != "" {
		ctx["output"] = lastLine
	}
	return &Error{
		Kind:    KindEnvironment,
		Code:    "ENV_COMMAND_FAILED",
		Status:  ExitEnvironment,
		Message: fmt.Sprintf("command %q failed", command),
		Context: ctx,
	}
}

// InvalidKind creates an invalid-kind error listing the accepted values.
func InvalidKind(kind string, valid []string) *Error {
	return &Error{
		Kind:    KindInvalidKind,
		Code:    "INVALID_KIND",
		Status:  ExitInvalidKind,
		Message: fmt.Sprintf("unknown kind %q: valid kinds are %s", kind, strings.Join(valid, ", ")),
		Context: map[string]string{"kind": kind},
	}
}

// Filesystem creates a filesystem error wrapping the underlying cause.
func Filesystem(message string, path string, err error) *Error {
	return &Error{
		Kind:    KindFilesystem,
		Code:    "FS_FAILED",
		Status:  ExitFilesystem,
		Message: message,
		Context: map[string]string{"path": path},
		Err:     err,
	}
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// exitCoder is satisfied by errors that know their process exit code.
type exitCoder interface {
	ExitCode() int
}

// ExitCode maps an error to the process exit code the run should end with.
// Errors outside the taxonomy exit 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return ExitEnvironment
}

// formatContext renders the context map in sorted key order so messages are
// deterministic.
func formatContext(ctx map[string]string) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+ctx[k])
	}
	return strings.Join(parts, " ")
}
