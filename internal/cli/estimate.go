package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/core/fees"
	"github.com/example/foia/internal/letter"
	"github.com/example/foia/internal/refdata"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate fees for a records request",
	Long: `Computes an itemized fee estimate from the jurisdiction's fee schedule:
search time, copy fees, audio/video media fees, and category surcharges.
Unknown jurisdictions produce a zero estimate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, _ := cmd.Flags().GetString("state")
		recordType, _ := cmd.Flags().GetString("type")
		pages, _ := cmd.Flags().GetInt("pages")
		audioMinutes, _ := cmd.Flags().GetFloat64("audio-minutes")
		searchHours, _ := cmd.Flags().GetFloat64("search-hours")

		state = strings.ToUpper(state)
		if state != "" && !refdata.Valid(state) {
			return fmt.Errorf("unknown jurisdiction: %s", state)
		}
		if recordType != "" && !letter.ValidRecordType(recordType) {
			return fmt.Errorf("unknown record type: %s\nRun 'foia letter types' for the list", recordType)
		}

		estimate := fees.Compute(state, recordType, pages, audioMinutes, searchHours)
		printEstimate(estimate)
		return nil
	},
}

func printEstimate(e fees.Estimate) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if e.SearchHours > 0 {
		fmt.Fprintf(w, "Search (%.1f h × $%.2f)\t$%.2f\n", e.SearchHours, e.SearchRate, e.SearchCost)
	}
	if e.Pages > 0 {
		fmt.Fprintf(w, "Copies (%d pages × $%.2f)\t$%.2f\n", e.Pages, e.CopyRate, e.CopyCost)
	}
	if e.AudioMinutes > 0 {
		fmt.Fprintf(w, "Media (%.0f min)\t$%.2f\n", e.AudioMinutes, e.MediaFee)
	}
	for _, s := range e.Surcharges {
		fmt.Fprintf(w, "%s\t$%.2f\n", s.Description, s.Amount)
	}
	fmt.Fprintf(w, "Total\t$%.2f\n", e.Total)
	w.Flush()

	if e.Note != "" {
		fmt.Printf("\n%s\n", e.Note)
	}
}

func init() {
	estimateCmd.Flags().StringP("state", "s", "", "Jurisdiction code (CA, NY, ...)")
	estimateCmd.Flags().StringP("type", "t", "", "Record type (emails, body-camera, ...)")
	estimateCmd.Flags().IntP("pages", "p", 0, "Estimated page count")
	estimateCmd.Flags().Float64("audio-minutes", 0, "Estimated audio/video minutes")
	estimateCmd.Flags().Float64("search-hours", 0, "Estimated staff search hours")
}

// EstimateCmd returns the estimate command
func EstimateCmd() *cobra.Command {
	return estimateCmd
}
