// Package display formats the user-facing output of a normalization run:
// one "old -> new" line per rename, a dry-run marker when applicable, and the
// trailing summary counts. Colors are applied with fatih/color and dropped
// automatically when the writer is not a terminal.
package display
