// Package resume splits résumé text into a fixed set of named sections.
//
// The pipeline has three stages. Extraction reads page texts through the
// parser package. Normalize cleans the joined text into non-empty lines.
// SplitSections then buckets each line under the most recent header keyword.
// Parsing is synchronous and keeps no shared mutable state, so separate
// documents can be parsed concurrently.
package resume

import (
	"io"

	"github.com/dgallion1/resumesplit/internal/document"
	"github.com/dgallion1/resumesplit/internal/parser"
)

// ErrDocumentUnreadable is returned when a document cannot be opened at all.
// Pages that fail individually are skipped instead.
var ErrDocumentUnreadable = parser.ErrDocumentUnreadable

// Result holds one string per section. Every field is always present when
// encoded; a section with no content is "".
type Result struct {
	Education      string `json:"education" yaml:"education"`
	Experience     string `json:"experience" yaml:"experience"`
	Skills         string `json:"skills" yaml:"skills"`
	Projects       string `json:"projects" yaml:"projects"`
	Certifications string `json:"certifications" yaml:"certifications"`
	Other          string `json:"other" yaml:"other"`
}

// Get returns the text for s, or "" for an unknown section.
func (r Result) Get(s Section) string {
	switch s {
	case Education:
		return r.Education
	case Experience:
		return r.Experience
	case Skills:
		return r.Skills
	case Projects:
		return r.Projects
	case Certifications:
		return r.Certifications
	case Other:
		return r.Other
	}
	return ""
}

// Map returns the result keyed by section name with all six keys set.
func (r Result) Map() map[string]string {
	m := make(map[string]string, 6)
	for _, s := range AllSections() {
		m[string(s)] = r.Get(s)
	}
	return m
}

func resultFrom(sections map[Section]string) Result {
	return Result{
		Education:      sections[Education],
		Experience:     sections[Experience],
		Skills:         sections[Skills],
		Projects:       sections[Projects],
		Certifications: sections[Certifications],
		Other:          sections[Other],
	}
}

type options struct {
	merge  MergeMode
	parser parser.Options
}

// Option configures a parse.
type Option func(*options)

// WithMergeMode sets how a repeated section header is handled.
func WithMergeMode(m MergeMode) Option {
	return func(o *options) { o.merge = m }
}

// WithPdftotextFallback retries unreadable PDFs with the pdftotext binary.
func WithPdftotextFallback(enabled bool) Option {
	return func(o *options) { o.parser.PDFFallbackPdftotext = enabled }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// FromText normalizes text and splits it into sections.
func FromText(text string, opts ...Option) Result {
	o := buildOptions(opts)
	return resultFrom(SplitSections(Normalize(text), o.merge))
}

// FromDocument splits an already extracted document.
func FromDocument(doc *document.Document, opts ...Option) Result {
	return FromText(doc.Text(), opts...)
}

// ExtractFile reads the page texts of the document at path.
func ExtractFile(path string, opts ...Option) (*document.Document, error) {
	o := buildOptions(opts)
	return parser.ParseFile(path, o.parser)
}

// Extract reads page texts from r, picking the format from filename.
func Extract(r io.Reader, filename string, opts ...Option) (*document.Document, error) {
	o := buildOptions(opts)
	p, err := parser.ForFile(filename, o.parser)
	if err != nil {
		return nil, err
	}
	return p.Parse(r, filename)
}

// ParseFile extracts, normalizes and splits the document at path. On error
// the zero Result is returned.
func ParseFile(path string, opts ...Option) (Result, error) {
	doc, err := ExtractFile(path, opts...)
	if err != nil {
		return Result{}, err
	}
	return FromDocument(doc, opts...), nil
}

// Parse is ParseFile for an in-memory upload.
func Parse(r io.Reader, filename string, opts ...Option) (Result, error) {
	doc, err := Extract(r, filename, opts...)
	if err != nil {
		return Result{}, err
	}
	return FromDocument(doc, opts...), nil
}
