// Package names normalizes file name stems into a lowercase,
// hyphen-separated canonical form.
package names

import (
	"path/filepath"
	"regexp"
	"strings"
)

var hyphenRuns = regexp.MustCompile(`-{2,}`)

// Sanitize applies the normalization pipeline to a stem, in this order:
// lowercase, spaces and underscores to hyphens, hyphen runs collapsed, edge
// hyphens trimmed. No other characters are altered; symbols, mid-stem dots
// and non-ASCII letters pass through apart from lowercasing.
func Sanitize(stem string) string {
	stem = strings.ToLower(stem)
	stem = strings.ReplaceAll(stem, " ", "-")
	stem = strings.ReplaceAll(stem, "_", "-")
	stem = hyphenRuns.ReplaceAllString(stem, "-")
	return strings.Trim(stem, "-")
}

// SplitExt splits a filename into stem and extension. The extension keeps its
// leading dot. Dotfiles like ".env" carry no extension.
func SplitExt(filename string) (stem, ext string) {
	ext = filepath.Ext(filename)
	stem = strings.TrimSuffix(filename, ext)
	if stem == "" {
		return filename, ""
	}
	return stem, ext
}

// JoinExt recombines a stem and extension, inserting the dot when the
// extension lacks one. An empty extension yields the bare stem.
func JoinExt(stem, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return stem + ext
}
