package parser

import (
	"strings"
	"testing"
)

func TestTextParser_SinglePage(t *testing.T) {
	input := "Jane Doe\n\nEXPERIENCE\nEngineer at Acme"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Text != input {
		t.Errorf("expected page text %q, got %q", input, doc.Pages[0].Text)
	}
}

func TestTextParser_FormFeedSplitsPages(t *testing.T) {
	input := "page one\fpage two\n\f\fpage four"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "paged.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		number int
		text   string
	}{
		{1, "page one"},
		{2, "page two"},
		{4, "page four"},
	}
	if len(doc.Pages) != len(want) {
		t.Fatalf("expected %d pages, got %d: %+v", len(want), len(doc.Pages), doc.Pages)
	}
	for i, w := range want {
		if doc.Pages[i].Number != w.number || doc.Pages[i].Text != w.text {
			t.Errorf("page[%d]: expected {%d %q}, got {%d %q}", i, w.number, w.text, doc.Pages[i].Number, doc.Pages[i].Text)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", doc.Title)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}
