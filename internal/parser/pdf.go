package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/resumesplit/internal/document"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first,
// then falls back to pdftotext if enabled and available.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "resumesplit-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc, err := p.parsePath(tmpPath)
	if err != nil {
		return nil, err
	}
	doc.Title = trimExt(filename)
	return doc, nil
}

// ParseFile reads the PDF at path directly.
func (p *PDFParser) ParseFile(path string) (*document.Document, error) {
	doc, err := p.parsePath(path)
	if err != nil {
		return nil, err
	}
	doc.Title = trimExt(path)
	return doc, nil
}

func (p *PDFParser) parsePath(path string) (*document.Document, error) {
	pages, err := extractPDFPages(path)
	if err != nil && p.FallbackPdftotext {
		pages, err = extractPdftotext(path)
	}
	if err != nil {
		return nil, unreadable("open pdf", err)
	}

	doc := &document.Document{}
	for i, text := range pages {
		doc.AddPage(i+1, text)
	}
	return doc, nil
}

// extractPDFPages returns one entry per source page. Pages the reader cannot
// decode come back as "" so page numbering stays aligned.
func extractPDFPages(path string) (pages []string, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf reader: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		pages = append(pages, pageText(reader, i))
	}
	return pages, nil
}

// pageText extracts a single page, swallowing any failure.
func pageText(reader *pdflib.Reader, n int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func extractPdftotext(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext terminates every page with a form feed.
	return strings.Split(strings.TrimSuffix(string(out), "\f"), "\f"), nil
}
