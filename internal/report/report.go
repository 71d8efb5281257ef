// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the digest's HTML document from aggregated papers.
package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-digest/internal/search"
)

// RenderedPaper is one paper with list fields flattened to display strings.
type RenderedPaper struct {
	Identifier          string
	Title               string
	Authors             string
	Categories          string
	Published           string
	SourceURL           string
	Comment             string
	Abstract            string
	TranslatedSummary   string
	ContributionSummary string
}

// Group is one query term's papers, in the order the query surfaced them.
type Group struct {
	Term   string
	Papers []RenderedPaper
}

// Data is everything the HTML template consumes. Groups follow the
// query-submission order; a paper surfaced by several terms appears in each
// of their groups.
type Data struct {
	Today       string
	DateRange   string
	Keywords    string
	Groups      []Group
	TotalPapers int
}

// Build flattens the aggregate into template data.
func Build(window search.Window, agg *search.Aggregator) Data {
	data := Data{
		Today:       window.ToDate(),
		DateRange:   window.Range(),
		Keywords:    strings.Join(agg.Terms(), ", "),
		TotalPapers: agg.Len(),
	}

	for _, term := range agg.Terms() {
		group := Group{Term: term}
		for _, id := range agg.IDsFor(term) {
			p := agg.Lookup(id)
			if p == nil {
				continue
			}
			group.Papers = append(group.Papers, RenderedPaper{
				Identifier:          p.Identifier,
				Title:               p.Title,
				Authors:             strings.Join(p.Authors, ", "),
				Categories:          strings.Join(p.Categories, ", "),
				Published:           p.Published.Format("2006-01-02"),
				SourceURL:           p.SourceURL,
				Comment:             p.Comment,
				Abstract:            p.Abstract,
				TranslatedSummary:   p.TranslatedSummary,
				ContributionSummary: p.ContributionSummary,
			})
		}
		data.Groups = append(data.Groups, group)
	}

	return data
}

// Render executes the digest template.
func Render(data Data) (string, error) {
	var sb strings.Builder
	if err := digestTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering digest: %w", err)
	}
	return sb.String(), nil
}

// Subject returns the digest email subject line.
func Subject(today string, totalPapers int) string {
	return fmt.Sprintf("arXiv digest - %s - %d papers", today, totalPapers)
}
