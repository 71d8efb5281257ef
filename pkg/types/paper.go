// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-digest pipeline.
package types

import "time"

// Paper holds the metadata for a single arXiv entry surfaced by a digest
// query, plus the summary fields attached after the summarization stage.
type Paper struct {
	// Identifier is the arXiv ID, taken from the trailing path segment of
	// the entry URL (e.g. "2401.00001v1"). Unique key within a run.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the paper title as returned by the feed.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists the paper authors in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// Categories lists the arXiv category terms in feed order (e.g. "cs.AI").
	Categories []string `json:"categories" yaml:"categories"`

	// Published is the submission timestamp from the feed.
	Published time.Time `json:"published" yaml:"published"`

	// SourceURL is the canonical abstract page URL from the entry <id>.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// Comment is the optional arxiv:comment field (page counts, venue notes).
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// TranslatedSummary is the abstract translated to the configured
	// language. Empty until the summarization stage runs; after it, always
	// non-empty (a real translation or an error placeholder).
	TranslatedSummary string `json:"translated_summary,omitempty" yaml:"translated_summary,omitempty"`

	// ContributionSummary is a one-sentence statement of the paper's core
	// contribution. Same lifecycle as TranslatedSummary.
	ContributionSummary string `json:"contribution_summary,omitempty" yaml:"contribution_summary,omitempty"`
}
