// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/history"
	"github.com/pdiddy/arxiv-digest/internal/mail"
	"github.com/pdiddy/arxiv-digest/internal/report"
	"github.com/pdiddy/arxiv-digest/internal/search"
	"github.com/pdiddy/arxiv-digest/internal/summarize"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and mail today's digest",
	Long: `Run executes the full pipeline: query arXiv for each configured term plus
the cross-category combination, deduplicate the results, summarize every
unique paper through the completion API, render the HTML report, mail it,
and archive the run.

With --dry-run the report is written to a local file instead of being mailed
or archived.`,
	RunE: runDigest,
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "render the digest to a file instead of mailing it")
	runCmd.Flags().String("out", "digest.html", "output path for --dry-run")
	runCmd.Flags().String("save", "", "also save the search results as a YAML run file")

	rootCmd.AddCommand(runCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg := digestConfig()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	outPath, _ := cmd.Flags().GetString("out")
	savePath, _ := cmd.Flags().GetString("save")

	ctx := context.Background()
	w := cmd.OutOrStdout()

	window := search.NewWindow(time.Now(), cfg.Search.DaysAgo)
	fmt.Fprintf(w, "collecting papers published %s\n", window.Range())

	client := &search.Client{
		HTTP: &http.Client{Timeout: cfg.Search.Timeout},
		Cfg:  cfg.Search,
		Log:  os.Stderr,
	}
	agg := search.Collect(ctx, client, cfg.Search, window, w)

	if savePath != "" {
		if err := search.NewRunFile(window, agg).Save(savePath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving run file: %v\n", err)
		}
	}

	// Nothing matched: skip summarization, rendering, and delivery entirely.
	if agg.Empty() {
		fmt.Fprintln(w, "no papers found in the window; nothing to send")
		return nil
	}
	fmt.Fprintf(w, "%d unique paper(s) across %d quer(ies)\n", agg.Len(), len(agg.Terms()))

	backend := summarize.NewOpenAIBackend(cfg.Summary)
	summarize.All(ctx, backend, agg.Papers(), cfg.Summary, w)

	data := report.Build(window, agg)
	html, err := report.Render(data)
	if err != nil {
		return err
	}
	subject := report.Subject(data.Today, data.TotalPapers)

	if dryRun {
		if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintf(w, "dry run: wrote %s (%q)\n", outPath, subject)
		return nil
	}

	sender, err := mail.NewSender(cfg.Mail)
	if err != nil {
		return err
	}
	if err := sender.Send(ctx, subject, html); err != nil {
		return err
	}
	fmt.Fprintf(w, "sent %q to %d recipient(s)\n", subject, len(cfg.Mail.Recipients))

	if cfg.History.Enabled {
		archiveRun(ctx, cfg.History.Path, window, agg, subject, data)
	}
	return nil
}

// archiveRun records the sent digest. Archiving is bookkeeping, so failures
// warn instead of failing a digest that was already delivered.
func archiveRun(ctx context.Context, path string, window search.Window, agg *search.Aggregator, subject string, data report.Data) {
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening archive: %v\n", err)
		return
	}
	defer store.Close()

	run := history.Run{
		RanAt:       time.Now(),
		WindowFrom:  window.FromDate(),
		WindowTo:    window.ToDate(),
		TotalPapers: agg.Len(),
		Subject:     subject,
	}

	var papers []history.RunPaper
	pos := 0
	for _, group := range data.Groups {
		for _, p := range group.Papers {
			papers = append(papers, history.RunPaper{
				Position:   pos,
				Identifier: p.Identifier,
				Title:      p.Title,
				Term:       group.Term,
				URL:        p.SourceURL,
			})
			pos++
		}
	}

	if _, err := store.Record(ctx, run, papers); err != nil {
		fmt.Fprintf(os.Stderr, "warning: archiving run: %v\n", err)
	}
}
