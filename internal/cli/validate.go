package cli

import (
	"fmt"
	"path/filepath"

	"github.com/devkit-labs/devkit/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a project manifest",
	Long: `Validate a ` + manifest.ManifestFile + ` manifest against the project schema.

With no argument, validates the manifest in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", manifest.ManifestFile)
		if len(args) == 1 {
			path = args[0]
		}

		fmt.Printf("Validating %s\n", path)

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if result.Valid {
			m, err := manifest.Parse(path)
			if err != nil {
				fmt.Println("  [ OK ] Valid manifest")
				return nil
			}
			fmt.Printf("  [ OK ] Valid manifest: %s (v%s)\n", m.Name, m.Version)
			return nil
		}

		fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Printf("    - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
