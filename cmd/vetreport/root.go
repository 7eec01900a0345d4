// Package main provides the entry point for the vetreport CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for vetreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vetreport",
		Short: "Report renderer for poultry diagnosis analyses",
		Long: `vetreport turns poultry diagnosis analyses into shareable reports.

It consumes analysis results produced upstream and renders printable HTML
documents, downloadable report files, and terminal summaries in Arabic
(default) or English. Inputs can be archived locally and re-rendered later.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewPrintCmd())
	cmd.AddCommand(NewHistoryCmd())
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
