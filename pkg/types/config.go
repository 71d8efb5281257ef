package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests. The arXiv
	// export API is friendlier to browser-like agents, so the default is
	// "Mozilla/5.0".
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CrossCategoryConfig describes the combined-category query that surfaces
// interdisciplinary papers keyword searches miss. A paper qualifies when one
// of the Primary categories co-occurs with the Secondary category.
type CrossCategoryConfig struct {
	// Enabled controls whether the cross-category query runs at all.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Primary lists the candidate primary categories (e.g. cs.AI, cs.LG).
	Primary []string `json:"primary" yaml:"primary"`

	// Secondary is the category that must co-occur with a primary one.
	// A trailing ".*" matches by prefix (e.g. "q-bio.*").
	Secondary string `json:"secondary" yaml:"secondary"`

	// Label is the synthetic query-term label used for report grouping.
	Label string `json:"label" yaml:"label"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Terms lists the keyword search terms, one query per term.
	Terms []string `json:"terms" yaml:"terms"`

	// MaxResults is the maximum number of entries requested per query (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DaysAgo is the lookback window in days (default 2). Papers published
	// before today-DaysAgo are discarded.
	DaysAgo int `json:"days_ago" yaml:"days_ago"`

	// Categories is the OR-group of category filters AND'd with every
	// keyword query.
	Categories []string `json:"categories" yaml:"categories"`

	// CrossCategory configures the combined-category query.
	CrossCategory CrossCategoryConfig `json:"cross_category" yaml:"cross_category"`

	// MaxAttempts is the number of HTTP attempts per query before giving up
	// (default 10). Exhaustion yields an empty result set, not an error.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// RetryDelay is the fixed delay between attempts (default 2s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// SummaryConfig holds settings for the summarization stage.
type SummaryConfig struct {
	// APIKey authenticates against the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is the completion model identifier (default "gpt-3.5-turbo").
	Model string `json:"model" yaml:"model"`

	// BaseURL optionally overrides the API endpoint for OpenAI-compatible
	// providers.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Temperature is the sampling temperature for both calls (default 1.3).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens is the output-length ceiling for both calls (default 8192).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Workers caps the number of papers summarized concurrently (default 16).
	Workers int `json:"workers" yaml:"workers"`

	// Language is the target language for the translated abstract
	// (default "Chinese").
	Language string `json:"language" yaml:"language"`
}

// MailConfig holds settings for digest delivery.
type MailConfig struct {
	// Sender is the sending address.
	Sender string `json:"sender" yaml:"sender"`

	// SenderName is the optional display name for the From header.
	SenderName string `json:"sender_name,omitempty" yaml:"sender_name,omitempty"`

	// Password is the SMTP credential (for Gmail/QQ, an app password).
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Recipients lists the destination addresses.
	Recipients []string `json:"recipients" yaml:"recipients"`

	// SMTPHost is the SMTP server hostname (default "smtp.qq.com").
	SMTPHost string `json:"smtp_host" yaml:"smtp_host"`

	// SMTPPort is the SMTP port. 465 (implicit TLS) by default.
	SMTPPort int `json:"smtp_port" yaml:"smtp_port"`
}

// HistoryConfig holds settings for the digest archive.
type HistoryConfig struct {
	// Enabled controls whether sent digests are archived.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file (default "digest.db").
	Path string `json:"path" yaml:"path"`
}

// DigestConfig groups all stage configurations for a digest run.
type DigestConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`
	Mail    MailConfig    `json:"mail" yaml:"mail"`
	History HistoryConfig `json:"history" yaml:"history"`
}
