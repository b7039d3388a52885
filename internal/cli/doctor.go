package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/devkit-labs/devkit/internal/manifest"
	"github.com/devkit-labs/devkit/internal/toolchain"
	"github.com/spf13/cobra"
)

var doctorDir string

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", "", "Project directory (default: current directory)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the local toolchain",
	Long: `Run diagnostic checks on the local toolchain.

Reports which package managers are installed and their versions, whether node
and git are available, and whether the project manifest's tool requirements
are satisfied. The command only reports; it never installs anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := doctorDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir = cwd
		}

		runToolchainCheck()
		runProjectCheck(dir)
		return nil
	},
}

func runToolchainCheck() {
	fmt.Println("Package managers:")
	for _, c := range toolchain.Candidates() {
		checkBinary(string(c.Name), c.MinVersion)
	}

	fmt.Println("Runtime:")
	checkBinary("node", "")
	checkBinary("git", "")
}

// checkBinary probes for a binary and, when found, reports its version. A
// non-empty minVersion turns the line into a pass/warn check.
func checkBinary(name, minVersion string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}

	version := binaryVersion(name)
	if version == "" {
		fmt.Printf("  [ OK ] %s found at %s\n", name, path)
		return
	}

	if minVersion != "" {
		ok, cmpErr := toolchain.MeetsMinimum(version, minVersion)
		if cmpErr == nil && !ok {
			fmt.Printf("  [WARN] %s %s is below the recommended minimum %s\n", name, version, minVersion)
			return
		}
	}
	fmt.Printf("  [ OK ] %s %s found at %s\n", name, version, path)
}

// binaryVersion asks a binary for its version. Returns "" when the binary
// does not answer; doctor keeps going either way.
func binaryVersion(name string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, "--version").Output()
	if err != nil {
		return ""
	}
	return toolchain.NormalizeVersionOutput(string(out))
}

func runProjectCheck(dir string) {
	fmt.Println("Project:")

	if !manifest.Exists(dir) {
		fmt.Printf("  [INFO] No %s in %s\n", manifest.ManifestFile, dir)
		return
	}

	m, err := manifest.ParseDir(dir)
	if err != nil {
		fmt.Printf("  [FAIL] Cannot parse %s: %v\n", manifest.ManifestFile, err)
		return
	}
	fmt.Printf("  [ OK ] %s is valid: %s (v%s)\n", manifest.ManifestFile, m.Name, m.Version)

	if m.PackageManager != "" {
		if _, err := exec.LookPath(m.PackageManager); err != nil {
			fmt.Printf("  [WARN] preferred package manager %q is not installed\n", m.PackageManager)
		} else {
			fmt.Printf("  [ OK ] preferred package manager %q is installed\n", m.PackageManager)
		}
	}

	for _, req := range m.Tools {
		checkBinary(req.Name, req.MinVersion)
	}
}
