// Package main provides the entry point for the Resume Analyzer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer_agent",
	Short: "Resume Analyzer",
	Long:  "Resume Analyzer scores a resume against a job description: keyword coverage, skill category match, compensation fit, and an overall score, available as a CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
