// Package project initializes a devkit workspace: the src/ and tests/
// directory skeleton, the devkit.yaml manifest, and a managed .gitignore
// block. Initialization is idempotent so it doubles as a repair command.
package project
