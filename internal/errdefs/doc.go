// Package errdefs defines the error taxonomy shared by all devkit commands:
// environment, invalid-kind, and filesystem failures. Each error carries a
// message, a short code, a numeric status, and an optional context map, and
// ExitCode maps any error to the process exit status at the main boundary.
package errdefs
