package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/refdata"
)

var jurisdictionCmd = &cobra.Command{
	Use:   "jurisdiction",
	Short: "Look up state public records statutes and fee schedules",
}

var jurisdictionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all jurisdictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tRESPONSE TIME\tSTATUTE")
		fmt.Fprintln(w, "----\t----\t-------------\t-------")
		for _, p := range refdata.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Code, p.Name, p.DisplayTime, p.Statute)
		}
		w.Flush()
		return nil
	},
}

var jurisdictionShowCmd = &cobra.Command{
	Use:   "show [code]",
	Short: "Show statute, response window, and fee schedule for one jurisdiction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := strings.ToUpper(args[0])
		profile, ok := refdata.Lookup(code)
		if !ok {
			return fmt.Errorf("unknown jurisdiction: %s", args[0])
		}

		fmt.Printf("%s (%s)\n", profile.Name, profile.Code)
		fmt.Printf("Statute: %s\n", profile.Statute)
		fmt.Printf("Response time: %s\n", profile.DisplayTime)

		schedule := refdata.ScheduleFor(code)
		origin := "statutory schedule"
		if !refdata.HasSchedule(code) {
			origin = "default assumptions"
		}
		fmt.Printf("\nFee schedule (%s):\n", origin)
		fmt.Printf("  Search: $%.2f/hour\n", schedule.SearchRate)
		fmt.Printf("  Copies: $%.2f/page\n", schedule.CopyFee)
		fmt.Printf("  Certification: $%.2f\n", schedule.CertificationFee)
		return nil
	},
}

func init() {
	jurisdictionCmd.AddCommand(jurisdictionListCmd)
	jurisdictionCmd.AddCommand(jurisdictionShowCmd)
}

// JurisdictionCmd returns the jurisdiction command
func JurisdictionCmd() *cobra.Command {
	return jurisdictionCmd
}
