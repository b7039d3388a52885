package cli

import (
	"log/slog"
	"os"

	"github.com/devkit-labs/devkit/internal/branding"
	"github.com/devkit-labs/devkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` prepares JavaScript/TypeScript project environments and scaffolds
source modules. It detects an available package manager, installs one when none
is present, and generates implementation/test file pairs from built-in templates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

// logger builds the CLI-wide structured logger. Commands pass it down to the
// packages that need one; nothing below the cli package reads the flag.
func logger() *slog.Logger {
	return logging.New(os.Stderr, rootVerbose)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
