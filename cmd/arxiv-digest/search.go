// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Preview the papers a digest would contain",
	Long: `Search runs the digest queries (one per keyword plus the cross-category
combination) and prints the deduplicated results without summarizing or
mailing anything. Useful for tuning terms, categories, and the lookback
window.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("terms", "", "comma-separated search terms (overrides config)")
	searchCmd.Flags().Int("max-results", 0, "maximum entries per query (overrides config)")
	searchCmd.Flags().Int("days-ago", -1, "lookback window in days (overrides config)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the results as a YAML run file")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := digestConfig()

	if terms, _ := cmd.Flags().GetString("terms"); terms != "" {
		cfg.Search.Terms = splitList([]string{terms})
	}
	if maxResults, _ := cmd.Flags().GetInt("max-results"); maxResults > 0 {
		cfg.Search.MaxResults = maxResults
	}
	if daysAgo, _ := cmd.Flags().GetInt("days-ago"); daysAgo >= 0 {
		cfg.Search.DaysAgo = daysAgo
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")

	ctx := context.Background()
	progress := cmd.ErrOrStderr()

	window := search.NewWindow(time.Now(), cfg.Search.DaysAgo)
	client := &search.Client{
		HTTP: &http.Client{Timeout: cfg.Search.Timeout},
		Cfg:  cfg.Search,
		Log:  os.Stderr,
	}
	agg := search.Collect(ctx, client, cfg.Search, window, progress)

	rf := search.NewRunFile(window, agg)
	if savePath != "" {
		if err := rf.Save(savePath); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rf)
	}

	printResults(cmd, window, agg)
	return nil
}

func printResults(cmd *cobra.Command, window search.Window, agg *search.Aggregator) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Window: %s\n\n", window.Range())
	for _, term := range agg.Terms() {
		ids := agg.IDsFor(term)
		fmt.Fprintf(w, "%s (%d)\n", term, len(ids))
		for _, id := range ids {
			p := agg.Lookup(id)
			if p == nil {
				continue
			}
			title := p.Title
			if len(title) > 70 {
				title = title[:67] + "..."
			}
			fmt.Fprintf(w, "  %-14s  %s  %s\n", p.Identifier, p.Published.Format("2006-01-02"), title)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d unique paper(s)\n", agg.Len())
}
