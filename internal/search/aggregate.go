// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the arXiv export API and aggregates results from
// overlapping digest queries into a unique paper set.
package search

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Aggregator merges the results of multiple queries. It keeps one Paper per
// identifier (first write wins) and, separately, the ordered list of
// identifiers each query term surfaced. The same identifier may appear under
// several terms; that overlap is what the report groups by.
type Aggregator struct {
	papers map[string]*types.Paper
	terms  []string
	byTerm map[string][]string
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		papers: make(map[string]*types.Paper),
		byTerm: make(map[string][]string),
	}
}

// Add records one query's results under the given term. A paper whose
// identifier is already known does not overwrite the stored record; only the
// term's identifier list grows. Calling Add twice with the same term appends
// to the existing list.
func (a *Aggregator) Add(term string, papers []types.Paper) {
	if _, ok := a.byTerm[term]; !ok {
		a.terms = append(a.terms, term)
		a.byTerm[term] = nil
	}
	for _, p := range papers {
		if _, ok := a.papers[p.Identifier]; !ok {
			stored := p
			a.papers[p.Identifier] = &stored
		}
		a.byTerm[term] = append(a.byTerm[term], p.Identifier)
	}
}

// Papers returns the unique paper set keyed by identifier. The pointers are
// shared with the aggregator so the summarization stage can attach results
// in place.
func (a *Aggregator) Papers() map[string]*types.Paper { return a.papers }

// Terms returns the query-term labels in the order they were added.
func (a *Aggregator) Terms() []string { return a.terms }

// IDsFor returns the ordered identifiers the given term surfaced.
func (a *Aggregator) IDsFor(term string) []string { return a.byTerm[term] }

// Lookup returns the stored paper for an identifier, or nil.
func (a *Aggregator) Lookup(id string) *types.Paper { return a.papers[id] }

// Len returns the number of unique papers.
func (a *Aggregator) Len() int { return len(a.papers) }

// Empty reports whether no query surfaced any paper.
func (a *Aggregator) Empty() bool { return len(a.papers) == 0 }

// Searcher is the query surface Collect drives. *Client implements it; tests
// substitute a mock.
type Searcher interface {
	Search(ctx context.Context, term string, window Window) ([]types.Paper, error)
	SearchCrossCategory(ctx context.Context, window Window) ([]types.Paper, error)
}

// Collect runs every configured query in submission order and aggregates the
// results. A failed query logs a warning and contributes an empty list; it
// never fails the run.
func Collect(ctx context.Context, s Searcher, cfg types.SearchConfig, window Window, w io.Writer) *Aggregator {
	agg := NewAggregator()

	for _, term := range cfg.Terms {
		papers, err := s.Search(ctx, term, window)
		if err != nil {
			fmt.Fprintf(w, "warning: search %q failed: %v\n", term, err)
		} else {
			fmt.Fprintf(w, "%d paper(s) for %q\n", len(papers), term)
		}
		agg.Add(term, papers)
	}

	cc := cfg.CrossCategory
	if cc.Enabled {
		papers, err := s.SearchCrossCategory(ctx, window)
		if err != nil {
			fmt.Fprintf(w, "warning: cross-category search failed: %v\n", err)
		} else {
			fmt.Fprintf(w, "%d paper(s) for cross-category query\n", len(papers))
		}
		agg.Add(crossCategoryLabel(cc), papers)
	}

	return agg
}

// crossCategoryLabel returns the synthetic grouping label for the
// combined-category query.
func crossCategoryLabel(cc types.CrossCategoryConfig) string {
	if cc.Label != "" {
		return cc.Label
	}
	return "cross-category"
}
