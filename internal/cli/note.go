package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/wire"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Track communications with agencies",
	Long:  "Record and review calls, emails, and letters exchanged during a request",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [request-id] [summary]",
	Short: "Add a communication note to a request",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, _ := cmd.Flags().GetString("channel")
		fullText, _ := cmd.Flags().GetString("full-text")

		note, err := wire.RequestService().AddNote(context.Background(), args[0], channel, args[1], fullText)
		if err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}

		fmt.Printf("✓ Added %s note to %s: %s\n", note.Channel, args[0], note.Summary)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list [request-id]",
	Short: "List notes on a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := wire.RequestService().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		if len(view.Notes) == 0 {
			fmt.Println("No notes found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tCHANNEL\tSUMMARY")
		fmt.Fprintln(w, "----\t-------\t-------")
		for _, n := range view.Notes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.Date.Format("2006-01-02"), n.Channel, n.Summary)
		}
		w.Flush()
		return nil
	},
}

func init() {
	noteAddCmd.Flags().StringP("channel", "c", "other", "Channel: email, phone, letter, in-person, other")
	noteAddCmd.Flags().String("full-text", "", "Full text of the communication")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
}

// NoteCmd returns the note command
func NoteCmd() *cobra.Command {
	return noteCmd
}
