// Package main provides the entry point for the resume_matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume matching and adaptive rewrite engine",
	Long:  "resume_matcher scores a resume against a job's skill requirements, selects the most relevant library projects, proposes skill-aware bullet rewrites, and tailors the resume through an interactive approval loop.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
