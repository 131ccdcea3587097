package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"code-refactor-insight/pkg/log"
)

const maxErrorBody = 512

// Config configures a Sender.
type Config struct {
	Timeout    time.Duration // per attempt
	RetryDelay time.Duration // fixed delay before the retry
	Retries    int           // extra attempts after the first one
}

// Sender posts JSON payloads to caller-supplied URLs.
type Sender struct {
	httpClient *http.Client
	config     Config
	l          log.Logger
}

// Result describes a finished delivery.
type Result struct {
	Attempts   int
	StatusCode int
}

// NewSender creates a Sender.
func NewSender(cfg Config, l log.Logger) *Sender {
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return &Sender{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		l:          l,
	}
}

// PostJSON marshals payload and POSTs it to url, retrying after
// RetryDelay on transport errors and non-2xx answers.
func (s *Sender) PostJSON(ctx context.Context, url string, payload any) (Result, error) {
	if url == "" {
		return Result{}, ErrEmptyURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	var lastErr error
	maxAttempts := s.config.Retries + 1

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(s.config.RetryDelay):
			case <-ctx.Done():
				return Result{Attempts: attempt - 1}, ctx.Err()
			}
		}

		status, err := s.post(ctx, url, body)
		if err == nil {
			return Result{Attempts: attempt, StatusCode: status}, nil
		}

		lastErr = err
		s.l.Warnf(ctx, "pkg.webhook.PostJSON: attempt %d/%d to %s failed: %v", attempt, maxAttempts, url, err)
	}

	return Result{Attempts: maxAttempts}, fmt.Errorf("%w after %d attempt(s): %v", ErrDeliveryFailed, maxAttempts, lastErr)
}

func (s *Sender) post(ctx context.Context, url string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
