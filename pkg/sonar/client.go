package sonar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the SonarCloud web API client.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// New creates a SonarCloud client. Each call is bounded by timeout.
func New(token string, timeout time.Duration) (*Client, error) {
	if token == "" {
		return nil, ErrNotConfigured
	}

	return &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// WithBaseURL overrides the default SonarCloud base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// GetMeasures returns metric key → value for projectKey.
func (c *Client) GetMeasures(ctx context.Context, projectKey string, metricKeys []string) (map[string]string, error) {
	if projectKey == "" {
		return nil, ErrNotConfigured
	}
	if len(metricKeys) == 0 {
		metricKeys = DefaultMetricKeys
	}

	query := url.Values{}
	query.Set("component", projectKey)
	query.Set("metricKeys", strings.Join(metricKeys, ","))
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, measuresPath, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build measures request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	var parsed MeasuresResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode measures response: %w", err)
	}

	measures := make(map[string]string, len(parsed.Component.Measures))
	for _, m := range parsed.Component.Measures {
		measures[m.Metric] = m.Value
	}
	return measures, nil
}

func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && len(errResp.Errors) > 0 {
		msgs := make([]string, 0, len(errResp.Errors))
		for _, e := range errResp.Errors {
			msgs = append(msgs, e.Msg)
		}
		return strings.Join(msgs, "; ")
	}
	return string(raw)
}
