package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/core/deadline"
	"github.com/example/foia/internal/refdata"
)

var deadlineCmd = &cobra.Command{
	Use:   "deadline",
	Short: "Preview the statutory response deadline for a jurisdiction",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, _ := cmd.Flags().GetString("state")
		submitted, _ := cmd.Flags().GetString("submitted")

		state = strings.ToUpper(state)
		profile, ok := refdata.Lookup(state)
		if !ok {
			return fmt.Errorf("unknown jurisdiction: %s", state)
		}

		submittedOn := time.Now()
		if submitted != "" {
			parsed, err := time.Parse("2006-01-02", submitted)
			if err != nil {
				return fmt.Errorf("invalid --submitted date (want YYYY-MM-DD): %w", err)
			}
			submittedOn = parsed
		}

		due, _ := deadline.DueDate(state, submittedOn)

		fmt.Printf("%s (%s)\n", profile.Name, profile.Code)
		fmt.Printf("Statutory window: %s\n", profile.DisplayTime)
		if profile.Window.Kind == refdata.WindowNone {
			fmt.Println("No fixed statutory deadline; a 10 business day window is assumed for tracking.")
		}
		fmt.Printf("Submitted: %s\n", submittedOn.Format("2006-01-02"))
		fmt.Printf("Response due: %s\n", due.Format("2006-01-02"))

		days := deadline.DaysUntil(due, time.Now())
		switch {
		case days < 0:
			fmt.Printf("Overdue by %d days\n", -days)
		case days == 0:
			fmt.Println("Due today")
		default:
			fmt.Printf("%d days remaining\n", days)
		}
		return nil
	},
}

func init() {
	deadlineCmd.Flags().StringP("state", "s", "", "Jurisdiction code (CA, NY, ...)")
	deadlineCmd.Flags().String("submitted", "", "Submission date (YYYY-MM-DD), defaults to today")
	deadlineCmd.MarkFlagRequired("state")
}

// DeadlineCmd returns the deadline command
func DeadlineCmd() *cobra.Command {
	return deadlineCmd
}
