// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mschulz/resume-tailor/internal/observability"
	"github.com/mschulz/resume-tailor/internal/selection"
)

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Generate a resume from a custom checkbox selection",
	Long:  "Builds an ad hoc profile from the selected checkbox ids in the profile set's custom_options catalog, with a derived headline and tagline.",
	RunE:  runCustom,
}

var (
	customSelected []string
	customFormat   string
	customOutput   string
)

func init() {
	customCmd.Flags().StringSliceVarP(&customSelected, "select", "s", nil, "Checkbox ids to select (repeatable, required)")
	customCmd.Flags().StringVarP(&customFormat, "format", "f", "", "Format mode: compact or executive")
	customCmd.Flags().StringVarP(&customOutput, "out", "o", "", "Output HTML file (default: stdout)")

	if err := customCmd.MarkFlagRequired("select"); err != nil {
		panic(fmt.Sprintf("failed to mark select flag as required: %v", err))
	}

	rootCmd.AddCommand(customCmd)
}

func runCustom(cmd *cobra.Command, _ []string) error {
	resume, profiles, cfg, err := loadDocuments(cmd.Context())
	if err != nil {
		return err
	}

	if customFormat == "" {
		customFormat = cfg.Format
	}
	mode, err := selection.ParseFormatMode(customFormat)
	if err != nil {
		return err
	}

	custom := profiles.ResolveSelection(customSelected)

	engine := selection.New(resume, profiles, mode)
	tailored, err := engine.GenerateCustom(custom)
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(tailored.Profile, custom.PriorityTags)
		printer.PrintResumeStats(tailored)
		printer.PrintExperienceBreakdown(tailored)
	}

	return writeRendered(tailored, customOutput)
}
