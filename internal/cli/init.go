package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devkit-labs/devkit/internal/branding"
	"github.com/devkit-labs/devkit/internal/manifest"
	"github.com/devkit-labs/devkit/internal/project"
	"github.com/devkit-labs/devkit/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initDir  string
	initName string
)

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", "", "Directory to initialize (default: current directory)")
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (default: derived from the directory name)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a project workspace",
	Long: `Initialize a project workspace in the target directory.

Creates the src/ and tests/ layout used by 'devkit generate', writes a
` + manifest.ManifestFile + ` manifest, and adds the managed .gitignore block. Running it
again is safe: existing files and directories are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := initDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir = cwd
		}

		name := initName
		if name == "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving directory %s: %w", dir, err)
			}
			name = scaffold.DeriveCasings(filepath.Base(abs)).Kebab
		}

		fmt.Printf("Initializing %s project in %s\n", name, dir)
		if err := project.Init(os.Stdout, dir, name); err != nil {
			return err
		}

		fmt.Printf("\nProject initialized. Run '%s setup' to install dependencies.\n", branding.CLIName())
		return nil
	},
}
