// Package fileutil collects the files and directories a normalization run
// will visit.
//
// Files come back sorted alphabetically for deterministic output; directories
// come back sorted deepest-first so a parent is never renamed while a child
// path still depends on it. Unreadable subtrees are skipped rather than
// aborting the walk.
package fileutil
