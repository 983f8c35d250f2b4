package normalize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/filenorm/internal/dates"
	"github.com/harrison/filenorm/internal/names"
)

// Result records one rename: where the entry was and where it ended up.
type Result struct {
	OldPath string
	NewPath string
}

// RunOptions bundle the settings a rename run applies to every entry.
type RunOptions struct {
	// AddDate prefixes files with their creation date when the name has no
	// embedded date.
	AddDate bool

	// DryRun computes and reports targets without renaming anything.
	DryRun bool

	// Format is the date granularity for both embedded and creation dates.
	Format dates.DateFormat
}

// File normalizes a single regular file on disk. A nil Result with a nil
// error means nothing needed doing: the path is not a regular file, or the
// name is already canonical. In dry-run mode the rename is skipped but the
// reported target is exactly what a real run would produce.
func File(path string, opts RunOptions) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, nil
	}

	var creation string
	if opts.AddDate {
		t, err := dates.CreationTime(path)
		if err != nil {
			return nil, err
		}
		creation = dates.FormatDate(t, opts.Format)
	}

	newName := Filename(filepath.Base(path), Options{
		AddDatePrefix: opts.AddDate,
		CreationDate:  creation,
		Format:        opts.Format,
	})
	newPath := filepath.Join(filepath.Dir(path), newName)
	if newPath == filepath.Clean(path) {
		return nil, nil
	}

	newPath = ResolveConflict(newPath, path)

	if !opts.DryRun {
		if err := os.Rename(path, newPath); err != nil {
			return nil, fmt.Errorf("failed to rename %s: %w", path, err)
		}
	}

	return &Result{OldPath: path, NewPath: newPath}, nil
}

// Directory normalizes a directory name in place. Dates are never extracted
// from or added to directory names; only the sanitizer applies. Callers must
// feed directories deepest-first so renaming a parent never invalidates a
// pending child path.
func Directory(path string, dryRun bool) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	newName := names.Sanitize(filepath.Base(path))
	if newName == "" {
		return nil, nil
	}
	newPath := filepath.Join(filepath.Dir(path), newName)
	if newPath == filepath.Clean(path) {
		return nil, nil
	}

	newPath = ResolveConflict(newPath, path)

	if !dryRun {
		if err := os.Rename(path, newPath); err != nil {
			return nil, fmt.Errorf("failed to rename %s: %w", path, err)
		}
	}

	return &Result{OldPath: path, NewPath: newPath}, nil
}
