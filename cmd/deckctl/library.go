package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(importCmd, exportCmd, listCmd, deleteCmd)
}

var exportOutput string

var importCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Store a CSV deck in the library, replacing a deck of the same name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, path := args[0], args[1]

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		library, closeFn, err := openLibrary()
		if err != nil {
			return err
		}
		defer closeFn()

		count, err := library.ImportFromReader(name, f)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards into %q\n", count, name)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a stored deck as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		library, closeFn, err := openLibrary()
		if err != nil {
			return err
		}
		defer closeFn()

		if exportOutput == "" {
			return library.ExportToWriter(args[0], cmd.OutOrStdout())
		}

		if dir := filepath.Dir(exportOutput); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return err
		}
		if err := library.ExportToWriter(args[0], f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %q to %s\n", args[0], exportOutput)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored decks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		library, closeFn, err := openLibrary()
		if err != nil {
			return err
		}
		defer closeFn()

		decks, err := library.ListDecks()
		if err != nil {
			return err
		}
		if len(decks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No decks stored")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCARDS\tUPDATED")
		for _, d := range decks {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Name, d.CardCount, d.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		library, closeFn, err := openLibrary()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := library.DeleteDeck(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
		return nil
	},
}
