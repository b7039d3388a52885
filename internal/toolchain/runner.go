package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CmdResult captures the observable outcome of one external command.
type CmdResult struct {
	ExitCode int
	LastLine string // last non-empty output line, for failure diagnostics
}

// commandRunner abstracts external process execution so the resolver can be
// exercised without spawning real package managers.
type commandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*CmdResult, error)
}

// Exec runs commands on the host. Stdout and Stderr can be set for testing;
// defaults to os.Stdout/os.Stderr. Child output is streamed live to the
// writers while also being captured so failures can report the last line.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir and blocks until the child exits. A
// non-zero exit is not an error here: it is reported through CmdResult so the
// caller can turn it into a typed failure. The error return covers spawn
// failures (binary missing, context canceled before start).
func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) (*CmdResult, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	stdout := e.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := e.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	result := &CmdResult{}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, fmt.Errorf("running %s: %w", name, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	// Failures usually report on stderr; fall back to stdout.
	result.LastLine = lastLine(stderrBuf.String())
	if result.LastLine == "" {
		result.LastLine = lastLine(stdoutBuf.String())
	}

	return result, nil
}

// lastLine returns the last non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
