package toolchain

import (
	"os"
	"path/filepath"
)

// Signal maps a lockfile name to the tool that writes it.
type Signal struct {
	File string
	Tool Tool
}

// lockfileSignals is scanned in order; the first existing file wins. The hint
// is advisory only: it is reported to the user but never overrides detection.
var lockfileSignals = []Signal{
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"pnpm-lock.yaml", Pnpm},
	{"yarn.lock", Yarn},
	{"package-lock.json", Npm},
}

// DetectLockfileHint scans dir for known lockfiles in priority order and
// returns the first match.
func DetectLockfileHint(dir string) (Signal, bool) {
	for _, s := range lockfileSignals {
		if _, err := os.Stat(filepath.Join(dir, s.File)); err == nil {
			return s, true
		}
	}
	return Signal{}, false
}
