package toolchain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if installed < required, 0 if equal, 1 if installed > required.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(installed, required string) (int, error) {
	iv, err := parseSemver(installed)
	if err != nil {
		return 0, fmt.Errorf("parsing installed version %q: %w", installed, err)
	}
	rv, err := parseSemver(required)
	if err != nil {
		return 0, fmt.Errorf("parsing required version %q: %w", required, err)
	}
	return iv.Compare(rv), nil
}

// MeetsMinimum reports whether installed satisfies the minimum version.
func MeetsMinimum(installed, minimum string) (bool, error) {
	cmp, err := CompareVersions(installed, minimum)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// NormalizeVersionOutput reduces a tool's --version output to a bare version
// string: surrounding whitespace and a leading "v" are dropped (node prints
// "v20.11.0", yarn prints "1.22.19").
func NormalizeVersionOutput(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "v")
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
