package manifest

// ManifestFile is the canonical manifest filename at a project root.
const ManifestFile = "devkit.yaml"

// ProjectManifest describes a devkit workspace, stored as devkit.yaml at the
// project root. It records identity plus the advisory tooling expectations
// that "devkit doctor" checks against the host.
type ProjectManifest struct {
	Name           string            `yaml:"name" json:"name"`
	Version        string            `yaml:"version" json:"version"`
	Description    string            `yaml:"description,omitempty" json:"description,omitempty"`
	PackageManager string            `yaml:"package_manager,omitempty" json:"package_manager,omitempty"`
	Tools          []ToolRequirement `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// ToolRequirement pins an advisory minimum version for an external tool.
type ToolRequirement struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// Default returns the manifest a fresh "devkit init" writes.
func Default(name string) *ProjectManifest {
	return &ProjectManifest{
		Name:        name,
		Version:     "0.1.0",
		Description: "Scaffolded with devkit",
		Tools: []ToolRequirement{
			{Name: "node", MinVersion: "18.0.0"},
		},
	}
}
