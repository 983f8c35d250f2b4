package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectOptions configures candidate collection.
type CollectOptions struct {
	// Recursive descends into subdirectories.
	Recursive bool
	// Extensions restricts files to these extensions (case-insensitive,
	// leading dot optional). Empty means every file.
	Extensions []string
	// ExcludeDirs lists directory names to skip entirely.
	ExcludeDirs []string
}

// CollectFiles returns the sorted regular files under root. root may itself
// be a single file, which is still subject to the extension filter.
func CollectFiles(root string, opts CollectOptions) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}

	extSet := extensionSet(opts.Extensions)

	if !info.IsDir() {
		if len(extSet) > 0 && !extSet[strings.ToLower(filepath.Ext(root))] {
			return nil, nil
		}
		return []string{root}, nil
	}

	excludeSet := nameSet(opts.ExcludeDirs)

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			if excludeSet[d.Name()] || !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if len(extSet) > 0 && !extSet[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// CollectDirs returns the directories under root sorted deepest-first, with
// alphabetical order within one depth. root itself is never included.
// A root that is not a directory yields no candidates.
func CollectDirs(root string, recursive bool, excludeDirs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	excludeSet := nameSet(excludeDirs)

	var dirs []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if excludeSet[d.Name()] {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		if !recursive {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		di := strings.Count(dirs[i], string(filepath.Separator))
		dj := strings.Count(dirs[j], string(filepath.Separator))
		if di != dj {
			return di > dj
		}
		return dirs[i] < dirs[j]
	})
	return dirs, nil
}

// extensionSet lowercases the filter and ensures each entry carries its dot.
func extensionSet(extensions []string) map[string]bool {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

func nameSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
