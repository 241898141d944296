package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_BlockElementsBecomeLines(t *testing.T) {
	input := `<html><head><title>Jane Doe CV</title><style>h2 { color: red }</style></head>
<body>
  <h1>Jane   Doe</h1>
  <h2>Education</h2>
  <p>BS Computer Science<br>State University</p>
  <h2>Skills</h2>
  <ul><li>Go</li><li>SQL</li></ul>
  <script>var x = "skills";</script>
</body></html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "cv.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Jane Doe CV" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	want := "Jane Doe\nEducation\nBS Computer Science\nState University\nSkills\nGo\nSQL"
	if doc.Pages[0].Text != want {
		t.Errorf("expected text %q, got %q", want, doc.Pages[0].Text)
	}
}

func TestHTMLParser_NoBody(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(""), "blank.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "blank" {
		t.Errorf("expected title %q, got %q", "blank", doc.Title)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages, got %d", len(doc.Pages))
	}
}
