package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrison/filenorm/internal/dates"
)

func TestFilename_Basic(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"case and separators", "Hello_World.PDF", "hello-world.pdf"},
		{"extension lowered", "file.TXT", "file.txt"},
		{"already normalized", "already-normalized.txt", "already-normalized.txt"},
		{"spaces", "My  Document.txt", "my-document.txt"},
		{"no extension", "My_Notes", "my-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.filename, Options{}))
		})
	}
}

// Normalizing a normalized name must return it unchanged.
func TestFilename_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello_World.PDF",
		"2024-01-15-Document.TXT",
		"__Messy  Name__.md",
		"plain",
	}

	for _, in := range inputs {
		once := Filename(in, Options{})
		assert.Equal(t, once, Filename(once, Options{}), "input %q", in)
	}
}

func TestFilename_EmbeddedDate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		format   dates.DateFormat
		want     string
	}{
		{"hyphenated kept", "2024-01-15-document.txt", dates.Full, "2024-01-15-document.txt"},
		{"underscored reformatted", "2024_01_15_document.txt", dates.Full, "2024-01-15-document.txt"},
		{"compact reformatted", "20240115-document.txt", dates.Full, "2024-01-15-document.txt"},
		{"month first reordered", "01-15-2024-document.txt", dates.Full, "2024-01-15-document.txt"},
		{"year month granularity", "2024_01_15_document.txt", dates.YearMonth, "2024-01-document.txt"},
		{"year granularity", "2024_01_15_document.txt", dates.Year, "2024-document.txt"},
		{"mid-stem date moved to front", "report-2024-01-15-final.txt", dates.Full, "2024-01-15-report-final.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.filename, Options{Format: tt.format}))
		})
	}
}

// An embedded date wins over the creation-date fallback.
func TestFilename_EmbeddedDatePrecedence(t *testing.T) {
	got := Filename("2024-01-15-document.txt", Options{
		AddDatePrefix: true,
		CreationDate:  "2024-03-20",
		Format:        dates.Full,
	})
	assert.Equal(t, "2024-01-15-document.txt", got)
}

func TestFilename_CreationDateFallback(t *testing.T) {
	opts := Options{AddDatePrefix: true, CreationDate: "2024-03-20", Format: dates.Full}

	assert.Equal(t, "2024-03-20-notes.txt", Filename("Notes.TXT", opts))

	// Without a creation date string nothing is prepended.
	assert.Equal(t, "notes.txt", Filename("Notes.TXT", Options{AddDatePrefix: true}))

	// Without the flag the creation date is ignored.
	assert.Equal(t, "notes.txt", Filename("Notes.TXT", Options{CreationDate: "2024-03-20"}))
}

// A syntactically date-like but invalid prefix is not extracted, yet the
// anchored fallback still strips it.
func TestFilename_InvalidDatePrefixStripped(t *testing.T) {
	got := Filename("2024-13-45-Report.PDF", Options{})
	assert.Equal(t, "report.pdf", got)
}

// The two strip paths disagree on purpose: a confirmed date is removed from
// the middle of the stem, while an invalid one embedded mid-stem survives the
// anchored-prefix fallback untouched.
func TestFilename_StripPathDivergence(t *testing.T) {
	valid := Filename("report-2024-01-15-final.txt", Options{})
	assert.Equal(t, "2024-01-15-report-final.txt", valid)

	invalid := Filename("report-2024-13-45-final.txt", Options{})
	assert.Equal(t, "report-2024-13-45-final.txt", invalid)
}
