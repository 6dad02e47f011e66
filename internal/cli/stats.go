package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/foia/internal/models"
	"github.com/example/foia/internal/wire"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics across all requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := wire.RequestService().Stats(context.Background())
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		if s.Total == 0 {
			fmt.Println("No requests tracked yet")
			return nil
		}

		fmt.Printf("Requests: %d\n", s.Total)
		if s.OverdueCount > 0 {
			fmt.Printf("Overdue: %s\n", color.New(color.FgRed).Sprintf("%d", s.OverdueCount))
		}
		fmt.Printf("Avg response time: %d days\n", s.AvgResponseTime)
		fmt.Printf("Avg cost: $%.2f\n", s.AvgCost)
		fmt.Printf("Fulfillment rate: %d%%\n", s.FulfillmentRate)
		fmt.Printf("Denial rate: %d%%\n", s.DenialRate)

		fmt.Println("\nBy status:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, status := range []string{
			models.StatusDraft, models.StatusSubmitted, models.StatusAcknowledged,
			models.StatusInProgress, models.StatusFulfilled, models.StatusPartial,
			models.StatusDenied, models.StatusAppealed,
		} {
			if count := s.ByStatus[status]; count > 0 {
				fmt.Fprintf(w, "  %s\t%d\n", statusBadge(status), count)
			}
		}
		w.Flush()
		return nil
	},
}

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return statsCmd
}
