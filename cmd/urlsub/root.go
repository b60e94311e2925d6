// Package main provides the entry point for the urlsub CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for urlsub.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlsub",
		Short: "Submit sitemap URLs to search engine indexing APIs",
		Long: `urlsub extracts URLs from an RSS-formatted sitemap file and submits them
to search engine indexing APIs.

Two engines are supported: the Bing URL Submission API (a capped random
sample of URLs per run, to stay within daily quotas) and IndexNow (the
full URL list). API keys are read from the BING_API_KEY and
INDEXNOW_API_KEY environment variables; a .env file in the working
directory is loaded automatically.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewSubmitCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
