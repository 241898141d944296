package document

import "strings"

// Document is the page-ordered text of an uploaded résumé.
type Document struct {
	Title string // From metadata or filename
	Pages []Page // Only pages that yielded text, in source order
}

// Page is the extracted text of one source page.
type Page struct {
	Number int    // 1-indexed position in the source document
	Text   string // Raw extracted text, never empty
}

// Text joins page texts with a line break in page order.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	texts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n")
}

// AddPage appends a page, skipping empty text.
func (d *Document) AddPage(number int, text string) {
	if text == "" {
		return
	}
	d.Pages = append(d.Pages, Page{Number: number, Text: text})
}
