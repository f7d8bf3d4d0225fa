// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mschulz/resume-tailor/internal/observability"
	"github.com/mschulz/resume-tailor/internal/rendering"
	"github.com/mschulz/resume-tailor/internal/selection"
	"github.com/mschulz/resume-tailor/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume for a stored profile",
	Long:  "Scores, filters, and ranks the dataset against a stored profile's priority tags and writes the rendered HTML resume.",
	RunE:  runGenerate,
}

var (
	generateProfileID string
	generateFormat    string
	generateOutput    string
)

func init() {
	generateCmd.Flags().StringVarP(&generateProfileID, "profile", "p", "", "Profile id to generate for (required)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Format mode: compact or executive")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Output HTML file (default: stdout)")

	if err := generateCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	resume, profiles, cfg, err := loadDocuments(cmd.Context())
	if err != nil {
		return err
	}

	if generateFormat == "" {
		generateFormat = cfg.Format
	}
	mode, err := selection.ParseFormatMode(generateFormat)
	if err != nil {
		return err
	}

	engine := selection.New(resume, profiles, mode)
	tailored, err := engine.Generate(generateProfileID)
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(tailored.Profile, priorityTagsFor(profiles, generateProfileID))
		printer.PrintResumeStats(tailored)
		printer.PrintExperienceBreakdown(tailored)
	}

	return writeRendered(tailored, generateOutput)
}

// writeRendered renders the tailored resume as a standalone HTML document
// and writes it to the output path, or stdout when no path is given.
func writeRendered(tailored *types.TailoredResume, output string) error {
	html := rendering.Document(tailored.Personal.Name.Full, rendering.Render(tailored))

	if output == "" {
		_, err := fmt.Fprintln(os.Stdout, html)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(output, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", output)
	return nil
}

func priorityTagsFor(profiles *types.ProfileSet, profileID string) []string {
	if p := profiles.FindProfile(profileID); p != nil {
		return p.PriorityTags
	}
	return nil
}
