package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/foia/internal/wire"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Track documents exchanged during a request",
}

var docAddCmd = &cobra.Command{
	Use:   "add [request-id] [name]",
	Short: "Record a document on a request",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docType, _ := cmd.Flags().GetString("type")
		fileRef, _ := cmd.Flags().GetString("file")
		notes, _ := cmd.Flags().GetString("notes")

		doc, err := wire.RequestService().AddDocument(context.Background(), args[0], args[1], docType, fileRef, notes)
		if err != nil {
			return fmt.Errorf("failed to add document: %w", err)
		}

		fmt.Printf("✓ Recorded %s document on %s: %s\n", doc.Type, args[0], doc.Name)
		return nil
	},
}

var docListCmd = &cobra.Command{
	Use:   "list [request-id]",
	Short: "List documents on a request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := wire.RequestService().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		if len(view.Documents) == 0 {
			fmt.Println("No documents found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tNAME\tFILE")
		fmt.Fprintln(w, "----\t----\t----\t----")
		for _, d := range view.Documents {
			file := d.FileRef
			if file == "" {
				file = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Date.Format("2006-01-02"), d.Type, d.Name, file)
		}
		w.Flush()
		return nil
	},
}

func init() {
	docAddCmd.Flags().StringP("type", "t", "other", "Type: request, acknowledgment, response, appeal, other")
	docAddCmd.Flags().StringP("file", "f", "", "Path or URL of the file")
	docAddCmd.Flags().String("notes", "", "Notes about the document")

	docCmd.AddCommand(docAddCmd)
	docCmd.AddCommand(docListCmd)
}

// DocCmd returns the doc command
func DocCmd() *cobra.Command {
	return docCmd
}
