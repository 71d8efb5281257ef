// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// mockBackend echoes a per-prompt marker or fails on selected abstracts.
type mockBackend struct {
	mu       sync.Mutex
	calls    int
	inflight int32
	peak     int32
	failOn   map[string]bool
}

func (m *mockBackend) Complete(_ context.Context, prompt string) (string, error) {
	cur := atomic.AddInt32(&m.inflight, 1)
	defer atomic.AddInt32(&m.inflight, -1)
	for {
		peak := atomic.LoadInt32(&m.peak)
		if cur <= peak || atomic.CompareAndSwapInt32(&m.peak, peak, cur) {
			break
		}
	}

	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	for marker := range m.failOn {
		if strings.Contains(prompt, marker) {
			return "", errors.New("boom")
		}
	}
	if strings.Contains(prompt, "Translate") {
		return "translated", nil
	}
	return "contribution", nil
}

func paperSet(n int) map[string]*types.Paper {
	papers := make(map[string]*types.Paper, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("2401.%05d", i)
		papers[id] = &types.Paper{Identifier: id, Abstract: "abstract " + id}
	}
	return papers
}

func TestAllAttachesBothSummaries(t *testing.T) {
	papers := paperSet(5)
	backend := &mockBackend{}

	var buf bytes.Buffer
	All(context.Background(), backend, papers, types.SummaryConfig{Workers: 4}, &buf)

	for id, p := range papers {
		if p.TranslatedSummary != "translated" {
			t.Errorf("%s: TranslatedSummary = %q", id, p.TranslatedSummary)
		}
		if p.ContributionSummary != "contribution" {
			t.Errorf("%s: ContributionSummary = %q", id, p.ContributionSummary)
		}
	}
	if backend.calls != 10 {
		t.Errorf("calls = %d, want 10 (two per paper)", backend.calls)
	}
}

func TestAllFailureBecomesPlaceholder(t *testing.T) {
	papers := paperSet(3)
	backend := &mockBackend{failOn: map[string]bool{"abstract 2401.00001": true}}

	var buf bytes.Buffer
	All(context.Background(), backend, papers, types.SummaryConfig{Workers: 2}, &buf)

	failed := papers["2401.00001"]
	if !strings.HasPrefix(failed.TranslatedSummary, "processing failed:") {
		t.Errorf("TranslatedSummary = %q, want placeholder", failed.TranslatedSummary)
	}
	if !strings.HasPrefix(failed.ContributionSummary, "processing failed:") {
		t.Errorf("ContributionSummary = %q, want placeholder", failed.ContributionSummary)
	}

	// Other papers are unaffected.
	if papers["2401.00000"].TranslatedSummary != "translated" {
		t.Errorf("healthy paper got %q", papers["2401.00000"].TranslatedSummary)
	}

	// Invariant: both fields non-empty everywhere.
	for id, p := range papers {
		if p.TranslatedSummary == "" || p.ContributionSummary == "" {
			t.Errorf("%s: summary field left empty", id)
		}
	}
}

func TestAllBoundsConcurrency(t *testing.T) {
	papers := paperSet(20)
	backend := &mockBackend{}

	var buf bytes.Buffer
	All(context.Background(), backend, papers, types.SummaryConfig{Workers: 3}, &buf)

	if peak := atomic.LoadInt32(&backend.peak); peak > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak)
	}
}

func TestAllEmptySetIsNoop(t *testing.T) {
	backend := &mockBackend{}
	var buf bytes.Buffer
	All(context.Background(), backend, nil, types.SummaryConfig{}, &buf)
	if backend.calls != 0 {
		t.Errorf("calls = %d, want 0", backend.calls)
	}
}

func TestRenderPrompt(t *testing.T) {
	got, err := renderPrompt(translationPromptTmpl, "Chinese", "An abstract.")
	if err != nil {
		t.Fatalf("renderPrompt() error: %v", err)
	}
	if !strings.Contains(got, "Chinese") || !strings.Contains(got, "An abstract.") {
		t.Errorf("prompt missing parameters: %q", got)
	}
}
