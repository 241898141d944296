package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/resumesplit/internal/document"
)

// ErrDocumentUnreadable is returned when a document cannot be opened at all:
// the path is missing, the format is unsupported, or the reader rejects it.
var ErrDocumentUnreadable = errors.New("document unreadable")

// Parser converts raw document bytes into page-ordered text.
type Parser interface {
	Parse(r io.Reader, filename string) (*document.Document, error)
}

// FileParser is implemented by parsers that can read straight from disk
// without buffering the upload first.
type FileParser interface {
	ParseFile(path string) (*document.Document, error)
}

// Options tunes format-specific behavior.
type Options struct {
	// PDFFallbackPdftotext shells out to pdftotext when the Go PDF reader
	// cannot open a file.
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrDocumentUnreadable, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// ParseFile opens path and extracts its pages. The file handle is closed on
// every return path.
func ParseFile(path string, opts Options) (*document.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrDocumentUnreadable, path)
	}

	p, err := ForFile(path, opts)
	if err != nil {
		return nil, err
	}
	if fp, ok := p.(FileParser); ok {
		return fp.ParseFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}
	defer f.Close()
	return p.Parse(f, filepath.Base(path))
}

// unreadable tags err as ErrDocumentUnreadable unless it already is.
func unreadable(stage string, err error) error {
	if errors.Is(err, ErrDocumentUnreadable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrDocumentUnreadable, stage, err)
}

func trimExt(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
