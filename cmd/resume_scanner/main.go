// Package main provides the entry point for the Resume Scanner service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scanner",
	Short: "Resume Scanner HTTP API Server",
	Long:  "Resume Scanner extracts contact details, education, experience, and skills from uploaded resumes and scores their completeness via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
