package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dgallion1/resumesplit/internal/interview"
	"github.com/dgallion1/resumesplit/internal/resume"
)

var (
	mergeMode     string
	usePdftotext  bool
	fallbackEmpty bool
	asContext     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Split a résumé into sections",
	Long: `Parse reads a résumé and prints its six sections.

A repeated section header discards what was collected for that section so
far. Pass --merge append to keep both runs instead.

Examples:
  resumesplit parse cv.pdf
  resumesplit parse cv.docx -o yaml
  resumesplit parse cv.pdf --context --fallback-empty`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := ParseOutputFormat(outputFormat)
		if err != nil {
			return err
		}
		mode, err := resume.ParseMergeMode(mergeMode)
		if err != nil {
			return err
		}

		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		res, err := parseResume(args[0], log,
			resume.WithMergeMode(mode),
			resume.WithPdftotextFallback(usePdftotext),
		)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), format, res)
	},
}

func init() {
	parseCmd.Flags().StringVar(&mergeMode, "merge", "reset", "repeated header handling: reset or append")
	parseCmd.Flags().BoolVar(&usePdftotext, "pdftotext", false, "retry unreadable PDFs with the pdftotext binary")
	parseCmd.Flags().BoolVar(&fallbackEmpty, "fallback-empty", false, "print empty sections instead of failing on an unreadable document")
	parseCmd.Flags().BoolVar(&asContext, "context", false, "print the interviewer context block instead of the sections")
}

// parseResume runs the full pipeline on path. With --fallback-empty an
// unreadable document yields empty sections and a warning.
func parseResume(path string, log *slog.Logger, opts ...resume.Option) (resume.Result, error) {
	res, err := resume.ParseFile(path, opts...)
	if err == nil {
		return res, nil
	}
	if fallbackEmpty && errors.Is(err, resume.ErrDocumentUnreadable) {
		log.Warn("document unreadable, using empty sections", "path", path, "error", err)
		return interview.EmptyResult(), nil
	}
	return resume.Result{}, fmt.Errorf("parse %s: %w", path, err)
}

func writeResult(w io.Writer, format OutputFormat, res resume.Result) error {
	if asContext {
		_, err := fmt.Fprintln(w, interview.CandidateContext(res))
		return err
	}
	return OutputTo(w, format, res)
}
