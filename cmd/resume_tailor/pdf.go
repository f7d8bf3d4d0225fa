// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mschulz/resume-tailor/internal/rendering"
	"github.com/mschulz/resume-tailor/internal/selection"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export a tailored resume as PDF",
	Long:  "Generates a tailored resume and prints it to PDF through a headless browser. Requires Chrome/Chromium (set CHROME_PATH to override discovery).",
	RunE:  runPDF,
}

var (
	pdfProfileID string
	pdfFormat    string
	pdfOutput    string
)

func init() {
	pdfCmd.Flags().StringVarP(&pdfProfileID, "profile", "p", "", "Profile id to generate for (required)")
	pdfCmd.Flags().StringVarP(&pdfFormat, "format", "f", "", "Format mode: compact or executive")
	pdfCmd.Flags().StringVarP(&pdfOutput, "out", "o", "resume.pdf", "Output PDF file")

	if err := pdfCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, _ []string) error {
	resume, profiles, cfg, err := loadDocuments(cmd.Context())
	if err != nil {
		return err
	}

	if pdfFormat == "" {
		pdfFormat = cfg.Format
	}
	mode, err := selection.ParseFormatMode(pdfFormat)
	if err != nil {
		return err
	}

	engine := selection.New(resume, profiles, mode)
	tailored, err := engine.Generate(pdfProfileID)
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}

	html := rendering.Document(tailored.Personal.Name.Full, rendering.Render(tailored))
	pdfBytes, err := rendering.RenderPDF(cmd.Context(), html)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(pdfOutput), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(pdfOutput, pdfBytes, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s (%d bytes)\n", pdfOutput, len(pdfBytes))
	return nil
}
