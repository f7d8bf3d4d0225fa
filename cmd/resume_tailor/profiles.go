// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the available profiles",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	_, profiles, _, err := loadDocuments(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tLABEL\tPRIORITY TAGS")
	for _, p := range profiles.Profiles {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Label, strings.Join(p.PriorityTags, ", "))
	}
	if len(profiles.CustomOptions) > 0 {
		_, _ = fmt.Fprintln(w, "\nCUSTOM OPTION\tLABEL\tTAGS")
		for _, opt := range profiles.CustomOptions {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", opt.ID, opt.Label, strings.Join(opt.Tags, ", "))
		}
	}
	return w.Flush()
}
