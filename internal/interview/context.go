// Package interview renders parsed résumé sections for the interviewer's
// prompt.
package interview

import (
	"fmt"
	"strings"

	"github.com/dgallion1/resumesplit/internal/resume"
)

// NotSpecified stands in for a section the résumé did not provide.
const NotSpecified = "Not specified"

// ValueOr returns v, or NotSpecified when v is blank.
func ValueOr(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotSpecified
	}
	return v
}

// CandidateContext formats the sections an interviewer draws questions
// from. Missing sections read as NotSpecified, never as an empty string.
func CandidateContext(r resume.Result) string {
	var sb strings.Builder
	sb.WriteString("Candidate background from résumé:\n")
	fmt.Fprintf(&sb, "Skills: %s\n", ValueOr(r.Skills))
	fmt.Fprintf(&sb, "Experience: %s\n", ValueOr(r.Experience))
	fmt.Fprintf(&sb, "Projects: %s", ValueOr(r.Projects))
	return sb.String()
}

// EmptyResult is the fallback used when a résumé could not be read.
func EmptyResult() resume.Result {
	return resume.Result{}
}
