package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter prints rename lines and the run summary.
type Reporter struct {
	out    io.Writer
	dryRun bool

	oldName *color.Color
	newName *color.Color
	marker  *color.Color
}

// NewReporter builds a reporter writing to out. Colors are dropped when
// noColor is set or when out is not an interactive terminal.
func NewReporter(out io.Writer, dryRun, noColor bool) *Reporter {
	r := &Reporter{
		out:     out,
		dryRun:  dryRun,
		oldName: color.New(color.FgCyan),
		newName: color.New(color.FgGreen),
		marker:  color.New(color.FgYellow),
	}
	if noColor || !writerIsTerminal(out) {
		for _, c := range []*color.Color{r.oldName, r.newName, r.marker} {
			c.DisableColor()
		}
	}
	return r
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Rename prints one rename line using the base names of both paths.
// Directories are suffixed with the path separator so they read distinctly
// from files.
func (r *Reporter) Rename(oldPath, newPath string, isDir bool) {
	suffix := ""
	if isDir {
		suffix = string(filepath.Separator)
	}
	prefix := ""
	if r.dryRun {
		prefix = r.marker.Sprint("[DRY RUN] ")
	}
	fmt.Fprintf(r.out, "%s%s -> %s\n",
		prefix,
		r.oldName.Sprint(filepath.Base(oldPath)+suffix),
		r.newName.Sprint(filepath.Base(newPath)+suffix))
}

// FileSummary prints the trailing count line for files, preceded by a blank
// line.
func (r *Reporter) FileSummary(renamed int) {
	fmt.Fprintf(r.out, "\n%s %d file(s)\n", r.action(), renamed)
}

// DirSummary prints the trailing count line for directories.
func (r *Reporter) DirSummary(renamed int) {
	fmt.Fprintf(r.out, "%s %d directory(ies)\n", r.action(), renamed)
}

func (r *Reporter) action() string {
	if r.dryRun {
		return "Would rename"
	}
	return "Renamed"
}
