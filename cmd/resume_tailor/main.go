// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mschulz/resume-tailor/internal/config"
	"github.com/mschulz/resume-tailor/internal/dataset"
	"github.com/mschulz/resume-tailor/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Profile-targeted resume generation",
	Long:  "resume_tailor filters and ranks a career-history dataset against role-targeted profiles to produce tailored resume views, rendered as HTML or PDF.",
}

var (
	cfgFile        string
	resumeSource   string
	profilesSource string
	verbose        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&resumeSource, "resume", "", "Resume dataset document (file path or URL)")
	rootCmd.PersistentFlags().StringVar(&profilesSource, "profiles", "", "Profile set document (file path or URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed selection information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultConfig carries the built-in document locations, matching the
// repository's sample data layout.
var defaultConfig = config.Config{
	Resume:   "assets/data/resume.json",
	Profiles: "assets/data/resume_profiles.json",
	Format:   "executive",
	Port:     8080,
}

// resolveConfig merges the config file (if any) over built-in defaults,
// then applies command-line flags on top.
func resolveConfig() (*config.Config, error) {
	merged := defaultConfig

	if cfgFile != "" {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		merged = cfg.MergeWithDefaults(defaultConfig)
	}

	if resumeSource != "" {
		merged.Resume = resumeSource
	}
	if profilesSource != "" {
		merged.Profiles = profilesSource
	}
	if verbose {
		merged.Verbose = true
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// loadDocuments resolves configuration and loads both input documents.
func loadDocuments(ctx context.Context) (*types.ResumeDataset, *types.ProfileSet, *config.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	resume, profiles, err := dataset.Load(ctx, cfg.Resume, cfg.Profiles)
	if err != nil {
		return nil, nil, nil, err
	}

	return resume, profiles, cfg, nil
}
