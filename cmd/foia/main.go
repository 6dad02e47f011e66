package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/cli"
	"github.com/example/foia/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "foia",
		Short:   "foia - draft and track public records requests",
		Version: version.String(),
		Long: `foia is a CLI tool for drafting public records requests, estimating fees,
and tracking requests through submission, response deadlines, and appeals.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.JurisdictionCmd())
	rootCmd.AddCommand(cli.EstimateCmd())
	rootCmd.AddCommand(cli.DeadlineCmd())
	rootCmd.AddCommand(cli.RequestCmd())
	rootCmd.AddCommand(cli.NoteCmd())
	rootCmd.AddCommand(cli.DocCmd())
	rootCmd.AddCommand(cli.LetterCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
