// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mschulz/resume-tailor/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Serves the two data documents and a generation endpoint. All computation is in-memory and stateless.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	resume, profiles, cfg, err := loadDocuments(cmd.Context())
	if err != nil {
		return err
	}

	port := servePort
	if port == 0 {
		port = cfg.Port
	}

	srv := server.New(server.Config{
		Port:     port,
		Dataset:  resume,
		Profiles: profiles,
	})

	return srv.Start()
}
