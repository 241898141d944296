package resume

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var blankReplacer = strings.NewReplacer("\u00a0", " ", "\t", " ")

// Normalize replaces non-breaking spaces and tabs with plain spaces, trims
// every line and drops the ones left empty. Lines are rejoined with "\n".
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return strings.Join(NormalizeLines(text), "\n")
}

// NormalizeLines is Normalize without the final join.
func NormalizeLines(text string) []string {
	text = blankReplacer.Replace(text)
	var lines []string
	for _, line := range splitLines(text) {
		if line = strings.TrimFunc(line, isStripSpace); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitLines splits on every Unicode line boundary. "\r\n" counts once and a
// trailing break does not produce a final empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// isStripSpace extends unicode.IsSpace with the ASCII information separators
// U+001C..U+001F, which also count as whitespace when trimming lines.
func isStripSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
