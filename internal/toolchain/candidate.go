package toolchain

// Tool identifies one supported package manager.
type Tool string

const (
	Bun  Tool = "bun"
	Pnpm Tool = "pnpm"
	Yarn Tool = "yarn"
	Npm  Tool = "npm"
)

// Candidate describes one package manager: how to probe for it, how to run a
// dependency install with it, and the version floor the doctor check warns
// below. The probe binary is the tool name itself.
type Candidate struct {
	Name        Tool
	InstallArgs []string
	RunPrefix   string // how scripts are invoked, for the next-steps banner
	MinVersion  string // advisory floor used by "devkit doctor"
}

// candidates is the fixed probe table. The order is the preference contract:
// fastest and most specialized first, most universal last. When more than one
// tool is present the earliest entry is chosen, so this order is part of the
// observable behavior and must stay stable.
var candidates = []Candidate{
	{Name: Bun, InstallArgs: []string{"install"}, RunPrefix: "bun run", MinVersion: "1.0.0"},
	{Name: Pnpm, InstallArgs: []string{"install"}, RunPrefix: "pnpm run", MinVersion: "8.0.0"},
	{Name: Yarn, InstallArgs: []string{"install"}, RunPrefix: "yarn", MinVersion: "1.22.0"},
	{Name: Npm, InstallArgs: []string{"install"}, RunPrefix: "npm run", MinVersion: "9.0.0"},
}

// Candidates returns the probe table in preference order.
func Candidates() []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	return out
}

// candidateFor returns the candidate entry for a tool.
func candidateFor(tool Tool) (Candidate, bool) {
	for _, c := range candidates {
		if c.Name == tool {
			return c, true
		}
	}
	return Candidate{}, false
}
