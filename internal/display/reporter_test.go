package display

import (
	"bytes"
	"testing"
)

func TestRename_File(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)

	r.Rename("/tmp/My File.TXT", "/tmp/my-file.txt", false)

	want := "My File.TXT -> my-file.txt\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRename_Directory(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)

	r.Rename("/tmp/My Docs", "/tmp/my-docs", true)

	want := "My Docs/ -> my-docs/\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRename_DryRunMarker(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, false)

	r.Rename("/tmp/Old.txt", "/tmp/old.txt", false)

	want := "[DRY RUN] Old.txt -> old.txt\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSummaries(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false, false)

	r.FileSummary(3)
	r.DirSummary(1)

	want := "\nRenamed 3 file(s)\nRenamed 1 directory(ies)\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSummaries_DryRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, false)

	r.FileSummary(0)

	want := "\nWould rename 0 file(s)\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// A non-terminal writer gets no escape codes even with colors nominally on.
func TestNoEscapeCodesForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true, false)

	r.Rename("/tmp/A.txt", "/tmp/a.txt", false)

	if bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Errorf("output contains escape codes: %q", buf.String())
	}
}
