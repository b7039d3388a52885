package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/devkit-labs/devkit/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var generateDir string

func init() {
	generateCmd.Flags().StringVar(&generateDir, "dir", ".", "Project root to generate into")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <kind> <name>",
	Short: "Scaffold a module with its test file",
	Long: `Generate an implementation/test file pair from built-in templates.

Kinds: ` + kindList() + `

The name may be given in any casing (UserService, userService, user-service,
user_service); file names and identifiers are derived from it. Existing files
are never overwritten.

Examples:
  devkit generate service user-profile
  devkit generate util parseDate`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected <kind> <name> arguments; kinds are %s (see '%s --help')", kindList(), cmd.CommandPath())
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, name := args[0], args[1]
		if err := validateName(name); err != nil {
			return err
		}

		result, err := scaffold.Generate(kind, name, generateDir)
		if err != nil {
			return err
		}

		printArtifact(result.Impl)
		printArtifact(result.Test)

		fmt.Println("\nNext steps:")
		fmt.Printf("  1. Implement %s\n", result.Impl.Path)
		fmt.Printf("  2. Run '%s setup' if dependencies are not installed yet\n", rootCmd.Use)
		fmt.Println("  3. Run your test suite to see the generated tests fail")
		return nil
	},
}

func printArtifact(a scaffold.Artifact) {
	switch a.Outcome {
	case scaffold.Created:
		fmt.Printf("Created: %s\n", a.Path)
	case scaffold.SkippedExisting:
		fmt.Printf("File already exists: %s\n", a.Path)
	}
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must start with a letter and contain only letters, digits, '-' or '_'", name)
	}
	return nil
}

func kindList() string {
	kinds := scaffold.ValidKinds()
	quoted := make([]string, len(kinds))
	for i, k := range kinds {
		quoted[i] = "'" + k + "'"
	}
	return strings.Join(quoted, ", ")
}
