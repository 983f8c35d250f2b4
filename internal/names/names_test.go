package names

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want string
	}{
		{"lowercase and separators", "Hello_World Test", "hello-world-test"},
		{"edge and double separators", "__My  File__Name__", "my-file-name"},
		{"plain name untouched", "document", "document"},
		{"hyphen runs collapsed", "a---b--c", "a-b-c"},
		{"edge hyphens trimmed", "--hello--", "hello"},
		{"symbols pass through", "notes(v2)+final", "notes(v2)+final"},
		{"mid-stem dots kept", "archive.backup.old", "archive.backup.old"},
		{"unicode lowercased only", "Über Straße", "über-straße"},
		{"empty", "", ""},
		{"only separators", "_ _", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.stem); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}

// Sanitizing twice must equal sanitizing once.
func TestSanitize_Fixpoint(t *testing.T) {
	inputs := []string{
		"Hello_World Test",
		"__My  File__Name__",
		"already-normalized",
		"A--B__C  D",
		"",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize(Sanitize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantStem string
		wantExt  string
	}{
		{"simple", "document.pdf", "document", ".pdf"},
		{"no extension", "document", "document", ""},
		{"multiple dots", "file.name.txt", "file.name", ".txt"},
		{"dotfile", ".env", ".env", ""},
		{"uppercase extension kept", "Report.PDF", "Report", ".PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitExt(tt.filename)
			if stem != tt.wantStem || ext != tt.wantExt {
				t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)",
					tt.filename, stem, ext, tt.wantStem, tt.wantExt)
			}
		})
	}
}

func TestJoinExt(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
		want string
	}{
		{"with dot", "document", ".pdf", "document.pdf"},
		{"without dot", "document", "pdf", "document.pdf"},
		{"empty extension", "document", "", "document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinExt(tt.stem, tt.ext); got != tt.want {
				t.Errorf("JoinExt(%q, %q) = %q, want %q", tt.stem, tt.ext, got, tt.want)
			}
		})
	}
}
