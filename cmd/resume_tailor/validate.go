// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mschulz/resume-tailor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the data documents against their JSON Schemas",
	Long:  "Checks the resume dataset and profile set documents against the schemas under schemas/. Both must be local files.",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	checks := []struct {
		schema   string
		document string
	}{
		{schemas.ResumeSchemaPath, cfg.Resume},
		{schemas.ProfilesSchemaPath, cfg.Profiles},
	}

	failed := false
	for _, check := range checks {
		schemaPath := schemas.ResolveSchemaPath(check.schema)
		if schemaPath == "" {
			return fmt.Errorf("schema not found: %s", check.schema)
		}

		if err := schemas.ValidateJSON(schemaPath, check.document); err != nil {
			failed = true
			_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", check.document, err)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s: OK\n", check.document)
	}

	if failed {
		return fmt.Errorf("document validation failed")
	}
	return nil
}
