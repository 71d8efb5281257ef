// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/mail"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// setConfigDefaults registers every config key's default so a bare install
// works against arXiv out of the box.
func setConfigDefaults() {
	viper.SetDefault("search.terms", []string{"transformer", "large language model"})
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("search.days_ago", 2)
	viper.SetDefault("search.categories", []string{"cs.AI", "cs.LG", "q-bio.*", "physics.chem-ph"})
	viper.SetDefault("search.timeout", "10s")
	viper.SetDefault("search.user_agent", "Mozilla/5.0")
	viper.SetDefault("search.max_attempts", 10)
	viper.SetDefault("search.retry_delay", "2s")
	viper.SetDefault("search.cross_category.enabled", true)
	viper.SetDefault("search.cross_category.primary", []string{"cs.AI", "cs.LG"})
	viper.SetDefault("search.cross_category.secondary", "q-bio.*")
	viper.SetDefault("search.cross_category.label", "cross-category")

	viper.SetDefault("summary.model", "gpt-3.5-turbo")
	viper.SetDefault("summary.temperature", 1.3)
	viper.SetDefault("summary.max_tokens", 8192)
	viper.SetDefault("summary.workers", 16)
	viper.SetDefault("summary.language", "Chinese")

	viper.SetDefault("mail.smtp_host", "smtp.qq.com")
	viper.SetDefault("mail.smtp_port", 465)

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.path", "digest.db")
}

// digestConfig resolves the full configuration from viper (config file and
// ARXIV_DIGEST_* environment), falling back to .secrets/ for credentials.
func digestConfig() types.DigestConfig {
	cfg := types.DigestConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			Terms:       stringList("search.terms"),
			MaxResults:  viper.GetInt("search.max_results"),
			DaysAgo:     viper.GetInt("search.days_ago"),
			Categories:  stringList("search.categories"),
			MaxAttempts: viper.GetInt("search.max_attempts"),
			RetryDelay:  viper.GetDuration("search.retry_delay"),
			CrossCategory: types.CrossCategoryConfig{
				Enabled:   viper.GetBool("search.cross_category.enabled"),
				Primary:   stringList("search.cross_category.primary"),
				Secondary: viper.GetString("search.cross_category.secondary"),
				Label:     viper.GetString("search.cross_category.label"),
			},
		},
		Summary: types.SummaryConfig{
			APIKey:      viper.GetString("summary.api_key"),
			Model:       viper.GetString("summary.model"),
			BaseURL:     viper.GetString("summary.base_url"),
			Temperature: viper.GetFloat64("summary.temperature"),
			MaxTokens:   viper.GetInt("summary.max_tokens"),
			Workers:     viper.GetInt("summary.workers"),
			Language:    viper.GetString("summary.language"),
		},
		Mail: types.MailConfig{
			Sender:     viper.GetString("mail.sender"),
			SenderName: viper.GetString("mail.sender_name"),
			Password:   viper.GetString("mail.password"),
			Recipients: stringList("mail.recipients"),
			SMTPHost:   viper.GetString("mail.smtp_host"),
			SMTPPort:   viper.GetInt("mail.smtp_port"),
		},
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Path:    viper.GetString("history.path"),
		},
	}

	if cfg.Summary.APIKey == "" {
		cfg.Summary.APIKey = loadedSecrets["openai-api-key"]
	}
	if cfg.Mail.Password == "" {
		cfg.Mail.Password = loadedSecrets["smtp-password"]
	}

	return cfg
}

// stringList reads a list-valued config key. Environment variables deliver
// a single comma-separated string, which must be split on commas only:
// viper's slice cast would split on whitespace and destroy multi-word terms
// like "large language model". YAML files and defaults deliver a real list.
func stringList(key string) []string {
	if s := viper.GetString(key); s != "" {
		return mail.SplitRecipients(s)
	}
	return splitList(viper.GetStringSlice(key))
}

// splitList cleans a list that is already a slice, comma-splitting any
// element that packs several values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			out = append(out, mail.SplitRecipients(v)...)
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
