/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Subcommands register themselves from their own files via init(). The root
// command validates global flags and resolves the author once, before any
// subcommand runs.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/jpl-au/textidx/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "textidx",
	Short: "Clean and validate text index input files",
	Long: `Tools for the tab-separated inputs of a text index: a documents file
(<id>\t<text> per line) and a words file (three or more fields per line).

  textidx clean docs.tsv docs.clean.tsv
  textidx validate words.tsv docs.tsv`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if author == "" {
			author = detectAuthor()
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command and closes the log before
// exit. Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	if wd, err := os.Getwd(); err == nil {
		if abs, err := filepath.Abs(wd); err == nil {
			log.SetProject(abs)
		}
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}
