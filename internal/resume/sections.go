package resume

import (
	"fmt"
	"strings"
)

// Section is a bucket label for résumé lines.
type Section string

const (
	Education      Section = "education"
	Experience     Section = "experience"
	Skills         Section = "skills"
	Projects       Section = "projects"
	Certifications Section = "certifications"
	Other          Section = "other"
)

type sectionHeader struct {
	section  Section
	keywords []string
}

// sectionHeaders is checked in order; the first entry with a matching
// keyword wins. Keywords are lowercase. Never mutated.
var sectionHeaders = [...]sectionHeader{
	{Education, []string{"education", "academic background"}},
	{Experience, []string{"experience", "work experience", "employment"}},
	{Skills, []string{"skills", "technical skills", "core competencies"}},
	{Projects, []string{"projects"}},
	{Certifications, []string{"certifications", "certificates"}},
}

// AllSections lists every result key in table order, Other last.
func AllSections() []Section {
	out := make([]Section, 0, len(sectionHeaders)+1)
	for _, h := range sectionHeaders {
		out = append(out, h.section)
	}
	return append(out, Other)
}

// Keywords returns a copy of the header keywords for s. Other has none.
func Keywords(s Section) []string {
	for _, h := range sectionHeaders {
		if h.section == s {
			return append([]string(nil), h.keywords...)
		}
	}
	return nil
}

// MatchHeader reports which section line switches to, if any.
func MatchHeader(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for _, h := range sectionHeaders {
		for _, kw := range h.keywords {
			if strings.Contains(lower, kw) {
				return h.section, true
			}
		}
	}
	return "", false
}

// MergeMode decides what happens when a header for an already seen section
// shows up again.
type MergeMode int

const (
	// MergeReset drops the lines collected under the earlier header.
	MergeReset MergeMode = iota
	// MergeAppend keeps them and continues appending.
	MergeAppend
)

func (m MergeMode) String() string {
	switch m {
	case MergeReset:
		return "reset"
	case MergeAppend:
		return "append"
	}
	return fmt.Sprintf("MergeMode(%d)", int(m))
}

// ParseMergeMode accepts "reset", "append" or "" (reset).
func ParseMergeMode(s string) (MergeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reset":
		return MergeReset, nil
	case "append":
		return MergeAppend, nil
	}
	return MergeReset, fmt.Errorf("unknown merge mode %q (want reset or append)", s)
}

// SplitSections assigns each line of text to a section. A line containing a
// header keyword switches the current section and is not stored. Sections
// that end up with no lines are absent from the result.
func SplitSections(text string, mode MergeMode) map[Section]string {
	buckets := map[Section][]string{Other: nil}
	current := Other

	for _, line := range splitLines(text) {
		if s, ok := MatchHeader(line); ok {
			current = s
			if mode == MergeReset {
				buckets[current] = nil
			}
			continue
		}
		buckets[current] = append(buckets[current], line)
	}

	out := make(map[Section]string, len(buckets))
	for s, lines := range buckets {
		if len(lines) == 0 {
			continue
		}
		out[s] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return out
}
