package resume

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/resumesplit/internal/document"
	"github.com/dgallion1/resumesplit/internal/parser/parsertest"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile_PDF(t *testing.T) {
	path := writeFile(t, "jane.pdf", parsertest.MinimalPDF(
		[]string{"Jane Doe", "EDUCATION", "BS Computer Science"},
		[]string{"EXPERIENCE", "Software Engineer at Acme"},
	))

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Result{
		Education:  "BS Computer Science",
		Experience: "Software Engineer at Acme",
		Other:      "Jane Doe",
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParseFile_PageWithoutTextIsSkipped(t *testing.T) {
	path := writeFile(t, "gap.pdf", parsertest.MinimalPDF(
		[]string{"SKILLS", "Go"},
		nil,
		[]string{"Rust"},
	))

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Skills != "Go\nRust" {
		t.Errorf("expected skills to continue across the empty page, got %q", got.Skills)
	}
}

func TestParseFile_Unreadable(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.pdf") }},
		{"corrupt pdf", func(t *testing.T) string { return writeFile(t, "bad.pdf", []byte("%PDF-garbage")) }},
		{"unsupported", func(t *testing.T) string { return writeFile(t, "cv.xls", []byte("a,b")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFile(tt.path(t))
			if !errors.Is(err, ErrDocumentUnreadable) {
				t.Fatalf("expected ErrDocumentUnreadable, got %v", err)
			}
			if got != (Result{}) {
				t.Errorf("expected no partial result, got %+v", got)
			}
		})
	}
}

func TestParse_TextUpload(t *testing.T) {
	in := "Jane Doe\n\tSKILLS\nGo and Rust\n\nPROJECTS\nraft"
	got, err := Parse(strings.NewReader(in), "jane.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Result{Skills: "Go and Rust", Projects: "raft", Other: "Jane Doe"}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParse_MergeOption(t *testing.T) {
	in := "Experience\nsummary\nExperience\nAcme"
	reset, err := Parse(strings.NewReader(in), "cv.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	appended, err := Parse(strings.NewReader(in), "cv.md", WithMergeMode(MergeAppend))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reset.Experience != "Acme" {
		t.Errorf("reset: expected %q, got %q", "Acme", reset.Experience)
	}
	if appended.Experience != "summary\nAcme" {
		t.Errorf("append: expected %q, got %q", "summary\nAcme", appended.Experience)
	}
}

func TestFromDocument_JoinsPages(t *testing.T) {
	doc := &document.Document{Pages: []document.Page{
		{Number: 1, Text: "CERTIFICATIONS\nCKA"},
		{Number: 3, Text: "AWS SA"},
	}}
	got := FromDocument(doc)
	if got.Certifications != "CKA\nAWS SA" {
		t.Errorf("unexpected certifications %q", got.Certifications)
	}
}

func TestResult_JSONHasAllKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(Result{Skills: "Go"}); err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if len(m) != 6 {
		t.Fatalf("expected 6 keys, got %d: %v", len(m), m)
	}
	for k, v := range m {
		if _, ok := v.(string); !ok {
			t.Errorf("key %q: expected string, got %T", k, v)
		}
	}
}
