package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/devkit-labs/devkit/internal/errdefs"
)

// Resolver picks exactly one package manager for a run and drives dependency
// installation through it. It is constructed per invocation and holds no
// state beyond that run.
type Resolver struct {
	log          *slog.Logger
	runner       commandRunner
	lookPath     func(string) (string, error)
	installerCmd []string
	out          io.Writer
}

// NewResolver returns a resolver that probes the real host. The logger is
// required; progress and diagnostics go through it.
func NewResolver(log *slog.Logger) *Resolver {
	return &Resolver{
		log:          log,
		runner:       &Exec{},
		lookPath:     exec.LookPath,
		installerCmd: fallbackInstallCommand(),
		out:          os.Stdout,
	}
}

// DetectAvailableTool probes the candidates in preference order and returns
// the first tool present on PATH.
func (r *Resolver) DetectAvailableTool() (Tool, bool) {
	for _, c := range candidates {
		path, err := r.lookPath(string(c.Name))
		if err != nil {
			r.log.Debug("probe failed", "tool", c.Name)
			continue
		}
		r.log.Debug("probe succeeded", "tool", c.Name, "path", path)
		return c.Name, true
	}
	return "", false
}

// EnsureFallbackTool installs the designated fallback via its universal
// installer. Called only when detection found nothing. An installer that
// cannot run or exits non-zero is an environment error; no retry.
func (r *Resolver) EnsureFallbackTool(ctx context.Context) (Tool, error) {
	argv := r.installerCmd
	res, err := r.runner.Run(ctx, "", argv[0], argv[1:]...)
	if err != nil {
		return "", errdefs.Environment("fallback installer could not run", err)
	}
	if res.ExitCode != 0 {
		return "", errdefs.CommandFailed(strings.Join(argv, " "), res.ExitCode, res.LastLine)
	}
	return FallbackTool, nil
}

// Resolve determines the tool for this run: advisory lockfile hint, then
// detection, then fallback installation if and only if detection failed.
func (r *Resolver) Resolve(ctx context.Context, dir string) (Tool, error) {
	if hint, ok := DetectLockfileHint(dir); ok {
		r.log.Info("lockfile hint", "file", hint.File, "suggests", hint.Tool)
	} else {
		r.log.Debug("no lockfile present", "dir", dir)
	}

	if tool, ok := r.DetectAvailableTool(); ok {
		r.log.Info("detected package manager", "tool", tool)
		return tool, nil
	}

	r.log.Info("no package manager found, installing fallback", "tool", FallbackTool)
	tool, err := r.EnsureFallbackTool(ctx)
	if err != nil {
		return "", err
	}
	r.log.Info("fallback tool installed", "tool", tool)
	return tool, nil
}

// InstallDependencies runs the tool's install command in dir, streaming its
// output live. A non-zero exit becomes a typed environment error carrying the
// exit code and last output line; it is never retried.
func (r *Resolver) InstallDependencies(ctx context.Context, tool Tool, dir string) error {
	c, ok := candidateFor(tool)
	if !ok {
		return errdefs.Environment(fmt.Sprintf("unsupported tool %q", tool), nil)
	}

	r.log.Info("installing dependencies", "tool", tool, "dir", dir)
	res, err := r.runner.Run(ctx, dir, string(c.Name), c.InstallArgs...)
	if err != nil {
		return errdefs.Environment(fmt.Sprintf("%s could not run", tool), err)
	}
	if res.ExitCode != 0 {
		command := string(c.Name) + " " + strings.Join(c.InstallArgs, " ")
		return errdefs.CommandFailed(command, res.ExitCode, res.LastLine)
	}
	return nil
}

// Setup runs the full flow: hint, detection, fallback if needed, dependency
// install, success banner. Any failure surfaces as a typed error for the
// caller to translate into a non-zero exit.
func (r *Resolver) Setup(ctx context.Context, dir string) error {
	tool, err := r.Resolve(ctx, dir)
	if err != nil {
		return err
	}

	if err := r.InstallDependencies(ctx, tool, dir); err != nil {
		return err
	}

	r.printNextSteps(tool)
	return nil
}

// printNextSteps writes the tool-specific success banner.
func (r *Resolver) printNextSteps(tool Tool) {
	c, ok := candidateFor(tool)
	if !ok {
		return
	}
	fmt.Fprintf(r.out, "\nEnvironment ready (using %s).\n", tool)
	fmt.Fprintln(r.out, "\nNext steps:")
	fmt.Fprintf(r.out, "  1. Run '%s dev' to start the dev server\n", c.RunPrefix)
	fmt.Fprintf(r.out, "  2. Run '%s test' to run the test suite\n", c.RunPrefix)
}
