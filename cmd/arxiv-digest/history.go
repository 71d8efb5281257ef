// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived digest runs",
	Long: `History lists past digest runs from the local archive database. Use
--run with a run ID to show the papers that run mailed.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int64("run", 0, "show the papers of a specific run")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := digestConfig()
	runID, _ := cmd.Flags().GetInt64("run")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	w := cmd.OutOrStdout()

	if runID > 0 {
		papers, err := store.Papers(ctx, runID)
		if err != nil {
			return err
		}
		if len(papers) == 0 {
			fmt.Fprintf(w, "no papers recorded for run %d\n", runID)
			return nil
		}
		for _, p := range papers {
			fmt.Fprintf(w, "%-14s  %-24s  %s\n", p.Identifier, p.Term, p.Title)
		}
		return nil
	}

	runs, err := store.Runs(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no archived runs")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-20s  %-23s  %-6s  %s\n", "ID", "Ran", "Window", "Papers", "Subject")
	for _, r := range runs {
		fmt.Fprintf(w, "%-4d  %-20s  %s - %s  %-6d  %s\n",
			r.ID, r.RanAt.Local().Format("2006-01-02 15:04"), r.WindowFrom, r.WindowTo, r.TotalPapers, r.Subject)
	}
	return nil
}
