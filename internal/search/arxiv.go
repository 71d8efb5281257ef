// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-digest/internal/httputil"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// arxivAPIBase is the arXiv export endpoint. Declared as a var so tests can
// substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// Client queries the arXiv export API.
type Client struct {
	HTTP *http.Client
	Cfg  types.SearchConfig

	// Log receives per-entry parse warnings. Nil means discard.
	Log io.Writer
}

func (c *Client) logf(format string, args ...any) {
	if c.Log != nil {
		fmt.Fprintf(c.Log, format, args...)
	}
}

// Search runs one keyword query: the free-text term AND'd with the
// configured category OR-group, newest submissions first. Results are
// filtered to the publication window; entries outside it are dropped even
// though the upstream sort does not filter by exact date.
func (c *Client) Search(ctx context.Context, term string, window Window) ([]types.Paper, error) {
	query := buildTermQuery(term, c.Cfg.Categories)
	if query == "" {
		return nil, fmt.Errorf("empty arXiv query")
	}

	papers, err := c.fetch(ctx, query, c.maxResults())
	if err != nil {
		return nil, err
	}
	return c.filterWindow(papers, window), nil
}

// SearchCrossCategory runs the combined-category query: no free text, just
// an OR of (primary AND secondary) category pairs. The upstream match is
// re-checked locally because cat: queries match any listed category, while
// the digest wants true co-occurrence.
func (c *Client) SearchCrossCategory(ctx context.Context, window Window) ([]types.Paper, error) {
	cc := c.Cfg.CrossCategory
	query := buildCrossCategoryQuery(cc)
	if query == "" {
		return nil, fmt.Errorf("cross-category query not configured")
	}

	// The combined query casts a wider net, so request double the cap.
	papers, err := c.fetch(ctx, query, 2*c.maxResults())
	if err != nil {
		return nil, err
	}

	papers = c.filterWindow(papers, window)

	var matched []types.Paper
	for _, p := range papers {
		if hasCrossCategories(p.Categories, cc) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (c *Client) maxResults() int {
	if c.Cfg.MaxResults > 0 {
		return c.Cfg.MaxResults
	}
	return 10
}

// fetch issues the GET with retries and parses the Atom feed.
func (c *Client) fetch(ctx context.Context, query string, maxResults int) ([]types.Paper, error) {
	url := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		arxivAPIBase, query, maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	ua := c.Cfg.UserAgent
	if ua == "" {
		ua = "Mozilla/5.0"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Cfg.MaxAttempts, c.Cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var papers []types.Paper
	for _, entry := range feed.Entries {
		p, err := convertEntry(entry)
		if err != nil {
			// A malformed entry fails alone, never the batch.
			c.logf("warning: skipping arXiv entry %q: %v\n", entry.ID, err)
			continue
		}
		papers = append(papers, p)
	}
	return papers, nil
}

func (c *Client) filterWindow(papers []types.Paper, window Window) []types.Paper {
	var kept []types.Paper
	for _, p := range papers {
		if window.Contains(p.Published) {
			kept = append(kept, p)
		}
	}
	return kept
}

// buildTermQuery constructs the search_query parameter for one keyword.
// Multi-word terms are joined with '+' the way the export API expects.
func buildTermQuery(term string, categories []string) string {
	words := strings.Fields(term)
	if len(words) == 0 {
		return ""
	}
	q := "all:" + strings.Join(words, "+")
	if group := categoryGroup(categories); group != "" {
		q += "+AND+" + group
	}
	return q
}

// categoryGroup renders the OR-group "(cat:A+OR+cat:B)".
func categoryGroup(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	parts := make([]string, len(categories))
	for i, cat := range categories {
		parts[i] = "cat:" + cat
	}
	return "(" + strings.Join(parts, "+OR+") + ")"
}

// buildCrossCategoryQuery renders "(cat:P1+AND+cat:S)+OR+(cat:P2+AND+cat:S)".
func buildCrossCategoryQuery(cc types.CrossCategoryConfig) string {
	if len(cc.Primary) == 0 || cc.Secondary == "" {
		return ""
	}
	pairs := make([]string, len(cc.Primary))
	for i, p := range cc.Primary {
		pairs[i] = "(cat:" + p + "+AND+cat:" + cc.Secondary + ")"
	}
	return strings.Join(pairs, "+OR+")
}

// hasCrossCategories reports whether the category list contains one of the
// primary tags together with the secondary tag.
func hasCrossCategories(categories []string, cc types.CrossCategoryConfig) bool {
	var primary, secondary bool
	for _, cat := range categories {
		for _, p := range cc.Primary {
			if matchCategory(cat, p) {
				primary = true
			}
		}
		if matchCategory(cat, cc.Secondary) {
			secondary = true
		}
	}
	return primary && secondary
}

// matchCategory compares a category term against a pattern. A trailing ".*"
// matches the whole archive (e.g. "q-bio.*" matches "q-bio.BM").
func matchCategory(cat, pattern string) bool {
	if archive, ok := strings.CutSuffix(pattern, ".*"); ok {
		return cat == archive || strings.HasPrefix(cat, archive+".")
	}
	return cat == pattern
}

// convertEntry maps one Atom entry to a Paper. A missing or malformed
// published timestamp fails the entry.
func convertEntry(entry arxivEntry) (types.Paper, error) {
	published, err := time.Parse(time.RFC3339, strings.TrimSpace(entry.Published))
	if err != nil {
		return types.Paper{}, fmt.Errorf("parsing published date %q: %w", entry.Published, err)
	}

	url := strings.TrimSpace(entry.ID)
	id := extractArxivID(url)
	if id == "" {
		return types.Paper{}, fmt.Errorf("no identifier in entry URL %q", url)
	}

	p := types.Paper{
		Identifier: id,
		Title:      strings.TrimSpace(entry.Title),
		Abstract:   strings.TrimSpace(entry.Summary),
		Published:  published,
		SourceURL:  url,
		Comment:    strings.TrimSpace(entry.Comment),
	}
	for _, a := range entry.Authors {
		p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
	}
	for _, cat := range entry.Categories {
		p.Categories = append(p.Categories, cat.Term)
	}
	return p, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID         string          `xml:"id"`
	Title      string          `xml:"title"`
	Summary    string          `xml:"summary"`
	Published  string          `xml:"published"`
	Authors    []arxivAuthor   `xml:"author"`
	Categories []arxivCategory `xml:"category"`
	Comment    string          `xml:"http://arxiv.org/schemas/atom comment"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2401.00001v1" → "2401.00001v1"). The version
// suffix stays: it is part of the URL's trailing segment and keeps the key
// stable across queries within a run.
func extractArxivID(idURL string) string {
	idx := strings.LastIndex(idURL, "/")
	if idx < 0 || idx == len(idURL)-1 {
		return ""
	}
	return idURL[idx+1:]
}
