// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultMaxAttempts = 10
	defaultRetryDelay  = 2 * time.Second
)

// DoWithRetry executes an idempotent HTTP request and retries on transport
// errors and non-2xx status codes, sleeping a fixed delay between attempts.
// The arXiv export API fails transiently under load, so every failure class
// is retried the same way rather than backing off per status.
//
// When maxAttempts is 0 the default (10) is used; when delay is 0 the
// default (2s) is used. Failed response bodies are drained and closed before
// sleeping. If the context is cancelled during a wait the function returns
// ctx.Err(). After exhausting attempts the last error (or an error wrapping
// the last status) is returned.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxAttempts int, delay time.Duration) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			// Drain and close the failed body before retrying.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
		}

		if attempt >= maxAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}
