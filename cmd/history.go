package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/modelcheck/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded validation runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent validation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		batchID, _ := cmd.Flags().GetString("batch")
		invalid, _ := cmd.Flags().GetBool("invalid")

		s, err := openHistory()
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.RunRepo().List(cmd.Context(), store.QueryOpts{
			Limit:       limit,
			BatchID:     batchID,
			InvalidOnly: invalid,
		})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No validation runs found.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-36s  %-19s  %-3s  %-26s  %s\n",
			"ID", "Timestamp", "OK", "Kind", "Source")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for _, r := range runs {
			ok := "✓"
			if !r.Valid {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-36s  %-19s  %-3s  %-26s  %s\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ok,
				r.ErrorKind,
				r.Source,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View a single validation run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openHistory()
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.RunRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if r == nil {
			return fmt.Errorf("run %s not found", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:        %s\n", r.ID)
		fmt.Fprintf(out, "Batch:     %s\n", r.BatchID)
		fmt.Fprintf(out, "Time:      %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Source:    %s\n", r.Source)
		fmt.Fprintf(out, "SHA-256:   %s\n", r.Digest)
		fmt.Fprintf(out, "Model:     %s\n", r.ModelKind)
		fmt.Fprintf(out, "Valid:     %v\n", r.Valid)
		fmt.Fprintf(out, "Duration:  %s\n", r.Duration)
		if !r.Valid {
			fmt.Fprintf(out, "Kind:      %s\n", r.ErrorKind)
			fmt.Fprintf(out, "Error:     %s\n", r.Message)
		}
		return nil
	},
}

func openHistory() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum number of runs to show")
	historyListCmd.Flags().String("batch", "", "Only show runs from this batch")
	historyListCmd.Flags().Bool("invalid", false, "Only show rejected documents")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
