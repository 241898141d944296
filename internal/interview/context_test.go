package interview

import (
	"strings"
	"testing"

	"github.com/dgallion1/resumesplit/internal/resume"
)

func TestCandidateContext_FillsMissingSections(t *testing.T) {
	got := CandidateContext(resume.Result{Skills: "Go\nRust"})

	want := "Candidate background from résumé:\n" +
		"Skills: Go\nRust\n" +
		"Experience: Not specified\n" +
		"Projects: Not specified"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestCandidateContext_EmptyResult(t *testing.T) {
	got := CandidateContext(EmptyResult())
	if n := strings.Count(got, NotSpecified); n != 3 {
		t.Errorf("expected 3 placeholders, got %d in %q", n, got)
	}
}

func TestValueOr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", NotSpecified},
		{"  \n", NotSpecified},
		{"Go", "Go"},
	}
	for _, tt := range tests {
		if got := ValueOr(tt.in); got != tt.want {
			t.Errorf("ValueOr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
