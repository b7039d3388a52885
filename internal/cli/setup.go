package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/devkit-labs/devkit/internal/toolchain"
	"github.com/spf13/cobra"
)

var setupDir string

func init() {
	setupCmd.Flags().StringVar(&setupDir, "dir", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Resolve a package manager and install dependencies",
	Long: `Prepare the project environment in one pass.

Setup probes for an installed package manager (bun, pnpm, yarn, npm, in that
order), installs pnpm via its standalone installer when none is found, then
runs the tool's install command with output streamed to the terminal. A
lockfile in the project directory is reported as a hint but never changes
which tool is chosen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := setupDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir = cwd
		}

		ctx := context.Background()
		return toolchain.NewResolver(logger()).Setup(ctx, dir)
	},
}
