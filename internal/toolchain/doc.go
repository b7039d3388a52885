// Package toolchain resolves the package manager that drives a project's
// dependency installation. It scans for lockfile hints, probes the supported
// tools in a fixed preference order, installs the designated fallback when
// none is present, and runs the install command with live output streaming.
// It powers the "devkit setup" command.
package toolchain
