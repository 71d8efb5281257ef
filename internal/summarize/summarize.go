// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize attaches translated and contribution summaries to papers
// by fanning out completion calls across a bounded worker pool.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"text/template"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const (
	defaultWorkers  = 16
	defaultLanguage = "Chinese"
)

// Backend abstracts the completion API so tests can supply a mock.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// All summarizes every paper in the set: two sequential completion calls per
// paper (translation, then contribution), at most cfg.Workers papers in
// flight at once. Each worker owns exactly one paper, so result attachment
// needs no locking. All blocks until every unit has finished.
//
// A failed or empty completion never aborts the batch; the error is embedded
// in a placeholder string, so after All returns both summary fields are
// non-empty on every paper.
func All(ctx context.Context, backend Backend, papers map[string]*types.Paper, cfg types.SummaryConfig, w io.Writer) {
	if len(papers) == 0 {
		return
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}

	fmt.Fprintf(w, "summarizing %d paper(s) with %d worker(s)\n", len(papers), workers)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for _, p := range papers {
		wg.Add(1)
		go func(p *types.Paper) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p.TranslatedSummary = complete(ctx, backend, translationPromptTmpl, language, p.Abstract)
			p.ContributionSummary = complete(ctx, backend, contributionPromptTmpl, language, p.Abstract)
		}(p)
	}

	wg.Wait()
}

// complete renders the prompt and runs one completion, converting any
// failure into a placeholder string.
func complete(ctx context.Context, backend Backend, tmpl *template.Template, language, abstract string) string {
	prompt, err := renderPrompt(tmpl, language, abstract)
	if err != nil {
		return placeholder(err)
	}
	out, err := backend.Complete(ctx, prompt)
	if err != nil {
		return placeholder(err)
	}
	if out == "" {
		return placeholder(errors.New("empty completion"))
	}
	return out
}

func placeholder(err error) string {
	return fmt.Sprintf("processing failed: %v", err)
}
