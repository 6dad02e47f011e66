package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/letter"
	"github.com/example/foia/internal/ports/primary"
	"github.com/example/foia/internal/wire"
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Generate and export request correspondence",
	Long:  "Render request letters, administrative appeals, and overdue follow-ups",
}

var letterTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List record-type templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tNAME\tTYPICAL FEES")
		fmt.Fprintln(w, "----\t----\t------------")
		for _, t := range letter.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, t.FeeEstimate)
		}
		w.Flush()
		return nil
	},
}

var letterTipsCmd = &cobra.Command{
	Use:   "tips [record-type]",
	Short: "Show drafting tips and key fields for a record type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, ok := letter.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown record type: %s", args[0])
		}

		fmt.Printf("%s (%s)\n", tmpl.Name, tmpl.ID)
		fmt.Printf("%s\n\n", tmpl.Description)
		fmt.Printf("Key fields: %s\n", joinFields(tmpl.KeyFields))
		fmt.Printf("Typical fees: %s\n\nTips:\n", tmpl.FeeEstimate)
		for _, tip := range tmpl.Tips {
			fmt.Printf("  - %s\n", tip)
		}
		return nil
	},
}

var letterGenerateCmd = &cobra.Command{
	Use:   "generate [request-id]",
	Short: "Print the generated request letter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := wire.RequestService().Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		if view.GeneratedText == "" {
			return fmt.Errorf("request %s has no generated letter", args[0])
		}
		fmt.Println(view.GeneratedText)
		return nil
	},
}

var letterExportCmd = &cobra.Command{
	Use:   "export [request-id]",
	Short: "Write the generated request letter to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		view, err := wire.RequestService().Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		if view.GeneratedText == "" {
			return fmt.Errorf("request %s has no generated letter", args[0])
		}

		if out == "" {
			out = fmt.Sprintf("%s.txt", view.ID)
		}
		if err := os.WriteFile(out, []byte(view.GeneratedText+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write letter: %w", err)
		}

		fmt.Printf("✓ Letter written to %s\n", out)
		return nil
	},
}

var letterAppealCmd = &cobra.Command{
	Use:   "appeal [request-id]",
	Short: "Render an administrative appeal letter for a denied request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")
		explanation, _ := cmd.Flags().GetString("explanation")
		denialReason, _ := cmd.Flags().GetString("denial-reason")
		basis, _ := cmd.Flags().GetStringArray("basis")
		out, _ := cmd.Flags().GetString("out")
		record, _ := cmd.Flags().GetBool("record")

		if !letter.ValidAppealReason(reason) {
			return fmt.Errorf("invalid --reason %q\nValid reasons: %s", reason, joinFields(letter.AppealReasons()))
		}

		svc := wire.RequestService()
		view, err := svc.Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		originalDate := view.CreatedAt
		if view.SubmittedDate != nil {
			originalDate = *view.SubmittedDate
		}
		if denialReason == "" {
			denialReason = view.DenialReason
		}

		now := time.Now()
		data := letter.AppealData{
			OriginalRequestDate: originalDate,
			DenialReason:        denialReason,
			Reason:              letter.AppealReason(reason),
			Explanation:         explanation,
			LegalBasis:          basis,
			Sender:              wire.Sender(),
			Now:                 now,
		}
		if denialDateFlag, _ := cmd.Flags().GetString("denial-date"); denialDateFlag != "" {
			parsed, err := time.Parse("2006-01-02", denialDateFlag)
			if err != nil {
				return fmt.Errorf("invalid --denial-date (want YYYY-MM-DD): %w", err)
			}
			data.DenialDate = &parsed
		}

		text := letter.Appeal(data)

		if record {
			err := svc.RecordAppeal(context.Background(), primary.AppealParams{
				ID:           view.ID,
				DenialReason: denialReason,
				AppealDate:   now,
			})
			if err != nil {
				return fmt.Errorf("failed to record appeal: %w", err)
			}
			fmt.Printf("✓ Request %s marked appealed\n\n", view.ID)
		}

		return emitLetter(text, out)
	},
}

var letterFollowupCmd = &cobra.Command{
	Use:   "followup [request-id]",
	Short: "Render a follow-up letter with a preservation notice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		view, err := wire.RequestService().Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		if view.SubmittedDate == nil {
			return fmt.Errorf("request %s has not been submitted; nothing to follow up on", args[0])
		}

		text := letter.FollowUp(view.Request, wire.Sender(), time.Now())
		return emitLetter(text, out)
	},
}

// emitLetter prints the letter, or writes it to a file when out is set.
func emitLetter(text, out string) error {
	if out == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(out, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write letter: %w", err)
	}
	fmt.Printf("✓ Letter written to %s\n", out)
	return nil
}

func joinFields(fields []string) string {
	joined := ""
	for i, f := range fields {
		if i > 0 {
			joined += ", "
		}
		joined += f
	}
	return joined
}

func init() {
	letterExportCmd.Flags().StringP("out", "o", "", "Output file (defaults to <request-id>.txt)")

	letterAppealCmd.Flags().StringP("reason", "r", "", "Appeal reason (improper-denial, excessive-fees, excessive-delay, inadequate-search, improper-redactions, other)")
	letterAppealCmd.Flags().StringP("explanation", "e", "", "Why the agency's response was wrong")
	letterAppealCmd.Flags().String("denial-reason", "", "Agency's stated denial reason (defaults to the recorded one)")
	letterAppealCmd.Flags().String("denial-date", "", "Date of the denial (YYYY-MM-DD)")
	letterAppealCmd.Flags().StringArray("basis", nil, "Legal citation supporting the appeal (repeatable)")
	letterAppealCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")
	letterAppealCmd.Flags().Bool("record", false, "Also mark the request appealed")
	letterAppealCmd.MarkFlagRequired("reason")

	letterFollowupCmd.Flags().StringP("out", "o", "", "Write to file instead of stdout")

	letterCmd.AddCommand(letterTypesCmd)
	letterCmd.AddCommand(letterTipsCmd)
	letterCmd.AddCommand(letterGenerateCmd)
	letterCmd.AddCommand(letterExportCmd)
	letterCmd.AddCommand(letterAppealCmd)
	letterCmd.AddCommand(letterFollowupCmd)
}

// LetterCmd returns the letter command
func LetterCmd() *cobra.Command {
	return letterCmd
}
