package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/analyzer"
	"github.com/jonathan/resume-scanner/internal/reader"
	"github.com/jonathan/resume-scanner/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Analyze resume files locally",
	Long:  `Extract contact details, education, experience, and skills from one or more resume files and print the results as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	results := make([]types.FileResult, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		filename := filepath.Base(path)
		text, err := reader.ExtractText(filename, data)
		if err != nil {
			return fmt.Errorf("failed to extract text from %s: %w", path, err)
		}

		results = append(results, analyzer.AnalyzeFile(text, filename))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
