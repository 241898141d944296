package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/resumesplit/internal/document"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. DOCX has no fixed pagination, so the whole
// body becomes a single page with one line per paragraph.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := parseDOCX(data)
	if err != nil {
		return nil, unreadable("parse docx", err)
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			if text := docxParagraphText(it); text != "" {
				lines = append(lines, text)
			}
		case *docx.Table:
			lines = append(lines, docxTableLines(it)...)
		}
	}

	out := &document.Document{Title: trimExt(filename)}
	out.AddPage(1, strings.Join(lines, "\n"))
	return out, nil
}

// parseDOCX recovers from panics inside go-docx on malformed archives.
func parseDOCX(data []byte) (doc *docx.Docx, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("docx reader: %v", r)
		}
	}()
	return docx.Parse(bytes.NewReader(data), int64(len(data)))
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.Tab:
				buf.WriteString("\t")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// docxTableLines flattens a table row by row, cells separated by tabs.
func docxTableLines(tbl *docx.Table) []string {
	var lines []string
	for _, row := range tbl.TableRows {
		var cells []string
		for _, cell := range row.TableCells {
			var parts []string
			for _, para := range cell.Paragraphs {
				if text := docxParagraphText(para); text != "" {
					parts = append(parts, text)
				}
			}
			if len(parts) > 0 {
				cells = append(cells, strings.Join(parts, " "))
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, "\t"))
		}
	}
	return lines
}
