package parser

import (
	"io"
	"strings"

	"github.com/dgallion1/resumesplit/internal/document"
)

// TextParser handles plain text files. Form feeds split pages, the way
// pdftotext and most print-to-text tools mark page boundaries.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &document.Document{Title: trimExt(filename)}
	for i, page := range strings.Split(string(data), "\f") {
		doc.AddPage(i+1, strings.Trim(page, "\r\n"))
	}
	return doc, nil
}
