package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsAndLists(t *testing.T) {
	input := `# Jane Doe

Backend engineer.

## Skills

- Go
- **Postgres**

## Experience

Engineer at Acme
2019 - 2024
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "resume.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "resume" {
		t.Errorf("expected title %q, got %q", "resume", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	want := "Jane Doe\nBackend engineer.\nSkills\nGo\nPostgres\nExperience\nEngineer at Acme\n2019 - 2024"
	if doc.Pages[0].Text != want {
		t.Errorf("expected text %q, got %q", want, doc.Pages[0].Text)
	}
}

func TestMarkdownParser_CodeBlockLines(t *testing.T) {
	input := "## Projects\n\n```\nkv-store\nraft demo\n```\n"

	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "code.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Text != "Projects\nkv-store\nraft demo" {
		t.Errorf("unexpected text %q", doc.Pages[0].Text)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"dir/plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}
