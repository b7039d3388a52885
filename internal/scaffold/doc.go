// Package scaffold generates TypeScript source/test file pairs from embedded
// templates. It powers the "devkit generate" command: a raw component name is
// turned into canonical casings, the template pair for the requested kind is
// rendered, and both files are written without ever overwriting existing work.
package scaffold
