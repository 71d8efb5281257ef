// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

func TestOpenAIBackendComplete(t *testing.T) {
	var gotModel string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotModel = req.Model

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  a fine summary  "}}]}`))
	}))
	defer ts.Close()

	backend := NewOpenAIBackend(types.SummaryConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: ts.URL + "/v1",
	})

	out, err := backend.Complete(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if out != "a fine summary" {
		t.Errorf("Complete() = %q, want trimmed content", out)
	}
	if gotModel != "gpt-4o-mini" {
		t.Errorf("model = %q", gotModel)
	}
}

func TestOpenAIBackendNoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	backend := NewOpenAIBackend(types.SummaryConfig{APIKey: "test-key", BaseURL: ts.URL + "/v1"})

	if _, err := backend.Complete(context.Background(), "x"); err == nil {
		t.Fatal("Complete() returned nil error for empty choices")
	}
}

func TestOpenAIBackendAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	backend := NewOpenAIBackend(types.SummaryConfig{APIKey: "bad", BaseURL: ts.URL + "/v1"})

	if _, err := backend.Complete(context.Background(), "x"); err == nil {
		t.Fatal("Complete() returned nil error for HTTP 401")
	}
}
