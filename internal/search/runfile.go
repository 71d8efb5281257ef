// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// RunFile is the on-disk snapshot of one digest run's search output. Saving
// a run lets the researcher inspect or re-render what a digest contained
// without re-querying the API.
type RunFile struct {
	Window  RunWindow              `json:"window" yaml:"window"`
	Terms   []string               `json:"terms" yaml:"terms"`
	ByTerm  map[string][]string    `json:"by_term" yaml:"by_term"`
	Papers  map[string]types.Paper `json:"papers" yaml:"papers"`
	Summary RunSummary             `json:"summary" yaml:"summary"`
}

// RunWindow stores the date window in a serializable form.
type RunWindow struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	TotalPapers int       `json:"total_papers" yaml:"total_papers"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewRunFile captures an aggregator's state for serialization.
func NewRunFile(window Window, agg *Aggregator) *RunFile {
	rf := &RunFile{
		Window: RunWindow{From: window.FromDate(), To: window.ToDate()},
		Terms:  agg.Terms(),
		ByTerm: make(map[string][]string),
		Papers: make(map[string]types.Paper),
		Summary: RunSummary{
			TotalPapers: agg.Len(),
			Timestamp:   time.Now(),
		},
	}
	for _, term := range agg.Terms() {
		rf.ByTerm[term] = agg.IDsFor(term)
	}
	for id, p := range agg.Papers() {
		rf.Papers[id] = *p
	}
	return rf
}

// Save writes the run file as YAML.
func (rf *RunFile) Save(path string) error {
	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}
	return nil
}

// LoadRunFile reads a previously saved run file.
func LoadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return &rf, nil
}
