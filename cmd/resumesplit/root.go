package main

import (
	"github.com/spf13/cobra"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "resumesplit",
	Short: "Split résumé documents into named sections",
	Long: `resumesplit extracts the text of a résumé (PDF, DOCX, Markdown, HTML or
plain text), normalizes it and buckets every line under the most recent
section header.

Sections: education, experience, skills, projects, certifications, other.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", string(OutputFormatJSON), "output format: json or yaml",
	)

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}
