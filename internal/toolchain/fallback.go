package toolchain

import "runtime"

// FallbackTool is installed when no package manager can be detected. pnpm is
// the designated fallback because its standalone installer works without
// Node.js present and it sits high in the preference order.
const FallbackTool = Pnpm

// fallbackInstallCommand returns the argv that runs the pnpm standalone
// installer on the current platform.
func fallbackInstallCommand() []string {
	if runtime.GOOS == "windows" {
		return []string{"powershell", "-NoProfile", "-Command", "irm https://get.pnpm.io/install.ps1 | iex"}
	}
	return []string{"sh", "-c", "curl -fsSL https://get.pnpm.io/install.sh | sh -"}
}
