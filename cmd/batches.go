package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/items"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "Inspect stored item batches",
}

var batchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		batches, err := s.BatchRepo().List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(batches) == 0 {
			fmt.Println("No batches found.")
			return nil
		}

		fmt.Printf("%-8s  %-19s  %-10s  %-5s  %-8s  %-24s  %s\n",
			"ID", "Created", "Kind", "Count", "Source", "Topic", "University")
		fmt.Println(strings.Repeat("─", 100))
		for _, b := range batches {
			fmt.Printf("%-8s  %-19s  %-10s  %-5d  %-8s  %-24s  %s\n",
				truncate(b.ID, 8),
				b.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				b.Kind,
				b.Count,
				b.Source,
				truncate(b.Topic, 24),
				b.University,
			)
		}
		return nil
	},
}

var batchesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a batch as a question sheet or answer key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetBool("answers")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		b, err := s.BatchRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if b == nil {
			return fmt.Errorf("batch %s not found", args[0])
		}

		kind, err := items.ParseKind(b.Kind)
		if err != nil {
			return err
		}
		list, err := items.DecodeBatch(kind, b.Items)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printBatchHeader(out, b)
		if answers {
			fmt.Fprintln(out, "Answer key")
		}
		return items.WriteSheet(out, list, answers)
	},
}

var batchesPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent batches",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 0 {
			return fmt.Errorf("--keep must not be negative")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.BatchRepo().Prune(cmd.Context(), keep)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d batch(es).\n", n)
		return nil
	},
}

func init() {
	batchesListCmd.Flags().IntP("limit", "n", 20, "Number of batches to show")
	batchesShowCmd.Flags().Bool("answers", false, "Print the answer key instead of the questions")
	batchesPruneCmd.Flags().Int("keep", 50, "Number of recent batches to keep")

	batchesCmd.AddCommand(batchesListCmd)
	batchesCmd.AddCommand(batchesShowCmd)
	batchesCmd.AddCommand(batchesPruneCmd)
}
