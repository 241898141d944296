// Package parsertest builds small in-memory documents for tests.
package parsertest

import (
	"bytes"
	"fmt"
	"strings"
)

// MinimalPDF renders an uncompressed PDF with one page per element of pages.
// Each line is drawn in its own text object so extractors see a line break
// between them. A nil or empty page gets no content stream at all.
func MinimalPDF(pages ...[]string) []byte {
	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) int {
		offsets = append(offsets, buf.Len())
		id := len(offsets)
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
		return id
	}

	buf.WriteString("%PDF-1.4\n")

	// Object ids are fixed up front: catalog, page tree, font, then one
	// page plus an optional content stream per page.
	const catalogID, pagesID, fontID = 1, 2, 3
	next := 4
	pageIDs := make([]int, len(pages))
	contentIDs := make([]int, len(pages))
	for i, lines := range pages {
		pageIDs[i] = next
		next++
		if len(lines) > 0 {
			contentIDs[i] = next
			next++
		}
	}

	kids := make([]string, len(pageIDs))
	for i, id := range pageIDs {
		kids[i] = fmt.Sprintf("%d 0 R", id)
	}

	obj(fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID))
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, lines := range pages {
		page := fmt.Sprintf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >>", pagesID, fontID)
		if contentIDs[i] != 0 {
			page += fmt.Sprintf(" /Contents %d 0 R", contentIDs[i])
		}
		obj(page + " >>")

		if contentIDs[i] == 0 {
			continue
		}
		var content strings.Builder
		y := 720
		for _, line := range lines {
			fmt.Fprintf(&content, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", y, escape(line))
			y -= 16
		}
		stream := content.String()
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
	}

	xrefAt := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, catalogID, xrefAt)
	return buf.Bytes()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
