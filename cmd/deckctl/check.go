package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"flashcards/internal/deck"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a CSV deck and print the cards it yields",
	Long: `Parse a CSV deck exactly as the study server does and print every card.
Rows with fewer than two fields are reported as skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return printCheck(cmd.OutOrStdout(), string(data))
	},
}

// printCheck writes the parsed cards and a summary line
func printCheck(w io.Writer, text string) error {
	rows := deck.Rows(text)
	cards := deck.Parse(text)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tQUESTION\tANSWER")
	for _, c := range cards {
		fmt.Fprintf(tw, "%d\t%q\t%q\n", c.ID, c.Question, c.Answer)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	skipped := 0
	if len(rows) > 1 {
		skipped = len(rows) - 1 - len(cards)
	}
	fmt.Fprintf(w, "%d cards, %d rows skipped\n", len(cards), skipped)
	if len(cards) == 0 {
		return fmt.Errorf("no cards found")
	}
	return nil
}
