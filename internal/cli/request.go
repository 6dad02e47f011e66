package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/foia/internal/models"
	"github.com/example/foia/internal/ports/primary"
	"github.com/example/foia/internal/wire"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Manage public records requests",
	Long:  "Draft, submit, and track public records requests through their lifecycle",
}

var requestCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Draft a new request with a generated letter and fee estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		recordType, _ := cmd.Flags().GetString("type")
		agency, _ := cmd.Flags().GetString("agency")
		state, _ := cmd.Flags().GetString("state")
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		fieldArgs, _ := cmd.Flags().GetStringArray("field")
		pages, _ := cmd.Flags().GetInt("pages")
		audioMinutes, _ := cmd.Flags().GetFloat64("audio-minutes")
		searchHours, _ := cmd.Flags().GetFloat64("search-hours")

		fields, err := parseFields(fieldArgs)
		if err != nil {
			return err
		}

		result, err := wire.RequestService().Create(context.Background(), primary.CreateRequestParams{
			Title:        title,
			RecordType:   recordType,
			Agency:       agency,
			Jurisdiction: strings.ToUpper(state),
			Description:  description,
			Fields:       fields,
			Pages:        pages,
			AudioMinutes: audioMinutes,
			SearchHours:  searchHours,
		})
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req := result.Request
		fmt.Printf("✓ Created request %s: %s\n", req.ID, req.Title)
		fmt.Printf("  Agency: %s\n", req.Agency)
		if req.Jurisdiction != "" {
			fmt.Printf("  Jurisdiction: %s\n", req.Jurisdiction)
		}
		fmt.Printf("  Estimated fees: $%.2f\n", result.Estimate.Total)
		if result.Estimate.Note != "" {
			fmt.Printf("  Note: %s\n", result.Estimate.Note)
		}
		fmt.Printf("\nReview the letter with 'foia letter generate %s', then 'foia request submit %s'\n", req.ID, req.ID)
		return nil
	},
}

var requestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")

		views, err := wire.RequestService().List(context.Background(), status)
		if err != nil {
			return fmt.Errorf("failed to list requests: %w", err)
		}

		if len(views) == 0 {
			fmt.Println("No requests found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tAGENCY\tDUE")
		fmt.Fprintln(w, "--\t------\t-----\t------\t---")
		for _, v := range views {
			due := "-"
			if v.DueDate != nil {
				due = v.DueDate.Format("2006-01-02")
				if v.DisplayStatus == models.StatusOverdue {
					due = fmt.Sprintf("%s (%dd late)", due, -v.DaysUntilDue)
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.ID, statusBadge(v.DisplayStatus), v.Title, v.Agency, due)
		}
		w.Flush()
		return nil
	},
}

var requestShowCmd = &cobra.Command{
	Use:   "show [request-id]",
	Short: "Show request details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := wire.RequestService().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Request: %s\n", view.ID)
		fmt.Printf("Title: %s\n", view.Title)
		fmt.Printf("Status: %s\n", statusBadge(view.DisplayStatus))
		fmt.Printf("Record type: %s\n", view.RecordType)
		fmt.Printf("Agency: %s\n", view.Agency)
		if view.Jurisdiction != "" {
			fmt.Printf("Jurisdiction: %s\n", view.Jurisdiction)
		}
		if view.Description != "" {
			fmt.Printf("Description: %s\n", view.Description)
		}

		printDate := func(label string, t *time.Time) {
			if t != nil {
				fmt.Printf("%s: %s\n", label, t.Format("2006-01-02"))
			}
		}
		printDate("Submitted", view.SubmittedDate)
		printDate("Acknowledged", view.AcknowledgedDate)
		printDate("Due", view.DueDate)
		printDate("Fulfilled", view.FulfilledDate)
		if view.DueDate != nil && !models.IsTerminal(view.Status) {
			if view.DaysUntilDue < 0 {
				fmt.Printf("Overdue by %d days\n", -view.DaysUntilDue)
			} else {
				fmt.Printf("Days until due: %d\n", view.DaysUntilDue)
			}
		}

		if view.EstimatedCost != nil {
			fmt.Printf("Estimated cost: $%.2f\n", *view.EstimatedCost)
		}
		if view.ActualCost != nil {
			fmt.Printf("Actual cost: $%.2f\n", *view.ActualCost)
		}
		if view.EstimatedPages != nil {
			fmt.Printf("Estimated pages: %d\n", *view.EstimatedPages)
		}
		if view.ActualPages != nil {
			fmt.Printf("Actual pages: %d\n", *view.ActualPages)
		}

		if view.DenialReason != "" {
			fmt.Printf("Denial reason: %s\n", view.DenialReason)
		}
		printDate("Appeal filed", view.AppealDate)
		if view.AppealOutcome != "" {
			fmt.Printf("Appeal outcome: %s\n", view.AppealOutcome)
		}

		if len(view.Notes) > 0 {
			fmt.Printf("\nNotes (%d):\n", len(view.Notes))
			for _, n := range view.Notes {
				fmt.Printf("  %s [%s] %s\n", n.Date.Format("2006-01-02"), n.Channel, n.Summary)
			}
		}
		if len(view.Documents) > 0 {
			fmt.Printf("\nDocuments (%d):\n", len(view.Documents))
			for _, d := range view.Documents {
				fmt.Printf("  %s [%s] %s\n", d.Date.Format("2006-01-02"), d.Type, d.Name)
			}
		}

		fmt.Printf("\nCreated: %s\n", view.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("Updated: %s\n", view.UpdatedAt.Format("2006-01-02 15:04"))
		return nil
	},
}

var requestSubmitCmd = &cobra.Command{
	Use:   "submit [request-id]",
	Short: "Mark a request submitted and compute its statutory due date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateFlag, _ := cmd.Flags().GetString("date")

		submittedOn := time.Now()
		if dateFlag != "" {
			parsed, err := time.Parse("2006-01-02", dateFlag)
			if err != nil {
				return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
			}
			submittedOn = parsed
		}

		req, err := wire.RequestService().Submit(context.Background(), args[0], submittedOn)
		if err != nil {
			return fmt.Errorf("failed to submit request: %w", err)
		}

		fmt.Printf("✓ Request %s submitted on %s\n", req.ID, req.SubmittedDate.Format("2006-01-02"))
		if req.DueDate != nil {
			fmt.Printf("  Response due: %s\n", req.DueDate.Format("2006-01-02"))
		} else {
			fmt.Println("  No statutory deadline (jurisdiction unset)")
		}
		return nil
	},
}

var requestSetStatusCmd = &cobra.Command{
	Use:   "set-status [request-id] [status]",
	Short: "Set request status (submitted, acknowledged, in-progress, fulfilled, partial, denied, appealed)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.RequestService().SetStatus(context.Background(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}
		fmt.Printf("✓ Request %s is now %s\n", args[0], args[1])
		return nil
	},
}

var requestEditCmd = &cobra.Command{
	Use:   "edit [request-id]",
	Short: "Edit request fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := primary.UpdateRequestParams{ID: args[0]}
		p.Title, _ = cmd.Flags().GetString("title")
		p.Agency, _ = cmd.Flags().GetString("agency")
		p.Description, _ = cmd.Flags().GetString("description")

		if cmd.Flags().Changed("actual-cost") {
			cost, _ := cmd.Flags().GetFloat64("actual-cost")
			p.ActualCost = &cost
		}
		if cmd.Flags().Changed("actual-pages") {
			pages, _ := cmd.Flags().GetInt("actual-pages")
			p.ActualPages = &pages
		}

		if p.Title == "" && p.Agency == "" && p.Description == "" && p.ActualCost == nil && p.ActualPages == nil {
			return fmt.Errorf("nothing to edit; see 'foia request edit --help' for flags")
		}

		if err := wire.RequestService().Update(context.Background(), p); err != nil {
			return fmt.Errorf("failed to edit request: %w", err)
		}
		fmt.Printf("✓ Request %s updated\n", args[0])
		return nil
	},
}

var requestAppealCmd = &cobra.Command{
	Use:   "appeal [request-id]",
	Short: "Record a denial and the appeal filed against it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		denialReason, _ := cmd.Flags().GetString("denial-reason")
		outcome, _ := cmd.Flags().GetString("outcome")
		dateFlag, _ := cmd.Flags().GetString("date")

		appealDate := time.Now()
		if dateFlag != "" {
			parsed, err := time.Parse("2006-01-02", dateFlag)
			if err != nil {
				return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
			}
			appealDate = parsed
		}

		err := wire.RequestService().RecordAppeal(context.Background(), primary.AppealParams{
			ID:           args[0],
			DenialReason: denialReason,
			AppealDate:   appealDate,
			Outcome:      outcome,
		})
		if err != nil {
			return fmt.Errorf("failed to record appeal: %w", err)
		}
		fmt.Printf("✓ Request %s marked appealed\n", args[0])
		fmt.Printf("  Draft the appeal letter with 'foia letter appeal %s'\n", args[0])
		return nil
	},
}

var requestDeleteCmd = &cobra.Command{
	Use:   "delete [request-id]",
	Short: "Delete a request permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.RequestService().Delete(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete request: %w", err)
		}
		fmt.Printf("✓ Request %s deleted\n", args[0])
		return nil
	},
}

// parseFields splits repeated --field key=value flags into a map.
func parseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --field %q (want key=value)", arg)
		}
		fields[key] = value
	}
	return fields, nil
}

// statusBadge colors a display status for terminal output.
func statusBadge(status string) string {
	switch status {
	case models.StatusDraft:
		return color.New(color.FgHiBlack).Sprint(status)
	case models.StatusSubmitted:
		return color.New(color.FgBlue).Sprint(status)
	case models.StatusAcknowledged, models.StatusInProgress:
		return color.New(color.FgCyan).Sprint(status)
	case models.StatusFulfilled:
		return color.New(color.FgGreen).Sprint(status)
	case models.StatusPartial:
		return color.New(color.FgYellow).Sprint(status)
	case models.StatusDenied, models.StatusOverdue:
		return color.New(color.FgRed).Sprint(status)
	case models.StatusAppealed:
		return color.New(color.FgMagenta).Sprint(status)
	}
	return status
}

func init() {
	requestCreateCmd.Flags().StringP("type", "t", "general", "Record type (run 'foia letter types' for the list)")
	requestCreateCmd.Flags().StringP("agency", "a", "", "Agency the request is addressed to")
	requestCreateCmd.Flags().StringP("state", "s", "", "Jurisdiction code (CA, NY, ...); empty for federal/other")
	requestCreateCmd.Flags().String("title", "", "Request title (defaults to template name + agency)")
	requestCreateCmd.Flags().StringP("description", "d", "", "Short description for tracking")
	requestCreateCmd.Flags().StringArrayP("field", "f", nil, "Template field as key=value (repeatable)")
	requestCreateCmd.Flags().IntP("pages", "p", 0, "Estimated page count")
	requestCreateCmd.Flags().Float64("audio-minutes", 0, "Estimated audio/video minutes")
	requestCreateCmd.Flags().Float64("search-hours", 0, "Estimated staff search hours")
	requestCreateCmd.MarkFlagRequired("agency")

	requestListCmd.Flags().String("status", "", "Filter by stored status")

	requestSubmitCmd.Flags().String("date", "", "Submission date (YYYY-MM-DD), defaults to today")

	requestEditCmd.Flags().String("title", "", "New title")
	requestEditCmd.Flags().StringP("agency", "a", "", "New agency")
	requestEditCmd.Flags().StringP("description", "d", "", "New description")
	requestEditCmd.Flags().Float64("actual-cost", 0, "Actual fees charged")
	requestEditCmd.Flags().Int("actual-pages", 0, "Actual pages received")

	requestAppealCmd.Flags().String("denial-reason", "", "Agency's stated reason for denial")
	requestAppealCmd.Flags().String("outcome", "", "Appeal outcome, once known")
	requestAppealCmd.Flags().String("date", "", "Appeal date (YYYY-MM-DD), defaults to today")

	requestCmd.AddCommand(requestCreateCmd)
	requestCmd.AddCommand(requestListCmd)
	requestCmd.AddCommand(requestShowCmd)
	requestCmd.AddCommand(requestSubmitCmd)
	requestCmd.AddCommand(requestSetStatusCmd)
	requestCmd.AddCommand(requestEditCmd)
	requestCmd.AddCommand(requestAppealCmd)
	requestCmd.AddCommand(requestDeleteCmd)
}

// RequestCmd returns the request command
func RequestCmd() *cobra.Command {
	return requestCmd
}
