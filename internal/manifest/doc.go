// Package manifest reads, writes, and validates the devkit.yaml project
// manifest. Validation runs against an embedded JSON Schema; parsing uses
// plain YAML decoding into ProjectManifest.
package manifest
