// Package normalize computes canonical filenames and performs the renames.
package normalize

import (
	"strings"

	"github.com/harrison/filenorm/internal/dates"
	"github.com/harrison/filenorm/internal/names"
)

// Options control how a single filename is normalized.
type Options struct {
	// AddDatePrefix prepends CreationDate when the name carries no embedded
	// date of its own.
	AddDatePrefix bool

	// CreationDate is the preformatted fallback prefix, typically the file's
	// creation time rendered through dates.FormatDate.
	CreationDate string

	// Format selects the granularity used when an embedded date is
	// reformatted into the prefix.
	Format dates.DateFormat
}

// Filename computes the normalized form of filename. It never touches the
// filesystem.
//
// An embedded date always wins over the creation-date fallback and is moved
// to the front of the name, reformatted per opts.Format. The two strip paths
// are deliberately different: a confirmed date is removed wherever it sits in
// the stem, while the no-date fallback only strips a start-anchored prefix.
func Filename(filename string, opts Options) string {
	stem, ext := names.SplitExt(filename)
	ext = strings.ToLower(ext)

	embedded, found := dates.Extract(stem)
	if found {
		stem = dates.StripDate(stem)
	} else {
		stem = dates.StripDatePrefix(stem)
	}
	clean := names.Sanitize(stem)

	switch {
	case found:
		clean = dates.FormatDate(embedded, opts.Format) + "-" + clean
	case opts.AddDatePrefix && opts.CreationDate != "":
		clean = opts.CreationDate + "-" + clean
	}

	return names.JoinExt(clean, ext)
}
