// Package api is the HTTP client for the agent routing platform's
// dashboard API. Every call takes a context, carries a request ID, and
// maps transport or status failures onto the dashboard error taxonomy.
// The client never retries on its own: retry is a user-initiated action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
)

const defaultTimeout = 10 * time.Second

// Client talks to the platform API over HTTP JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// Feedback returns the feedback records for the last windowDays days.
func (c *Client) Feedback(ctx context.Context, windowDays int) ([]platform.FeedbackRecord, error) {
	var out []platform.FeedbackRecord
	q := url.Values{"window_days": {strconv.Itoa(windowDays)}}
	if err := c.getJSON(ctx, "fetch feedback", "/api/feedback", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TokenUsage returns per-request token usage for the last windowDays days.
func (c *Client) TokenUsage(ctx context.Context, windowDays int) ([]platform.TokenUsageRecord, error) {
	var out []platform.TokenUsageRecord
	q := url.Values{"window_days": {strconv.Itoa(windowDays)}}
	if err := c.getJSON(ctx, "fetch token usage", "/api/usage/tokens", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RoutingEfficiency returns the recent routing decisions.
func (c *Client) RoutingEfficiency(ctx context.Context) ([]platform.RoutingDecision, error) {
	var out []platform.RoutingDecision
	if err := c.getJSON(ctx, "fetch routing efficiency", "/api/routing/efficiency", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProjectStats returns the executions backing the per-project breakdown.
func (c *Client) ProjectStats(ctx context.Context) ([]platform.ExecutionRecord, error) {
	var out []platform.ExecutionRecord
	if err := c.getJSON(ctx, "fetch project stats", "/api/stats/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ModelStats returns the executions backing the per-model breakdown for
// the given period (e.g. "7d", "30d").
func (c *Client) ModelStats(ctx context.Context, period string) ([]platform.ExecutionRecord, error) {
	var out []platform.ExecutionRecord
	q := url.Values{"period": {period}}
	if err := c.getJSON(ctx, "fetch model stats", "/api/stats/models", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Executions returns the most recent executions, capped at limit.
func (c *Client) Executions(ctx context.Context, limit int) ([]platform.ExecutionRecord, error) {
	var out []platform.ExecutionRecord
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.getJSON(ctx, "fetch executions", "/api/executions", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Classify asks the platform to classify prompt and returns the routing
// outcome. A prompt that is empty after trimming is rejected client-side
// with a ValidationError before any network call.
func (c *Client) Classify(ctx context.Context, prompt, projectID string) (platform.ClassificationResult, error) {
	var out platform.ClassificationResult
	if strings.TrimSpace(prompt) == "" {
		return out, &ValidationError{Field: "prompt", Reason: "must not be empty"}
	}

	body := map[string]string{"prompt": prompt}
	if projectID != "" {
		body["project_id"] = projectID
	}
	if err := c.writeJSON(ctx, "classify prompt", http.MethodPost, "/api/classify", body, &out); err != nil {
		return platform.ClassificationResult{}, err
	}
	return out, nil
}

// GitLabReviews returns automated MR reviews, optionally scoped to one
// project.
func (c *Client) GitLabReviews(ctx context.Context, projectID string) ([]platform.GitLabReviewRecord, error) {
	var out []platform.GitLabReviewRecord
	var q url.Values
	if projectID != "" {
		q = url.Values{"project_id": {projectID}}
	}
	if err := c.getJSON(ctx, "fetch gitlab reviews", "/api/gitlab/reviews", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GitLabStats returns the platform-computed feedback summary for GitLab
// reviews.
func (c *Client) GitLabStats(ctx context.Context) (metrics.FeedbackStats, error) {
	var out metrics.FeedbackStats
	if err := c.getJSON(ctx, "fetch gitlab stats", "/api/gitlab/stats", nil, &out); err != nil {
		return metrics.FeedbackStats{}, err
	}
	return out, nil
}

// AddGitLabComment posts a comment to the given review.
func (c *Client) AddGitLabComment(ctx context.Context, reviewID, text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "comment", Reason: "must not be empty"}
	}
	path := "/api/gitlab/reviews/" + url.PathEscape(reviewID) + "/comments"
	return c.writeJSON(ctx, "add gitlab comment", http.MethodPost, path, map[string]string{"text": text}, nil)
}

// Plugins returns the installed plugin inventory.
func (c *Client) Plugins(ctx context.Context) ([]platform.Plugin, error) {
	var out []platform.Plugin
	if err := c.getJSON(ctx, "fetch plugins", "/api/plugins", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPluginEnabled enables or disables a plugin.
func (c *Client) SetPluginEnabled(ctx context.Context, pluginID string, enabled bool) error {
	path := "/api/plugins/" + url.PathEscape(pluginID)
	return c.writeJSON(ctx, "toggle plugin", http.MethodPut, path, map[string]bool{"enabled": enabled}, nil)
}

func (c *Client) getJSON(ctx context.Context, op, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	return c.do(op, req, out)
}

func (c *Client) writeJSON(ctx context.Context, op, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Fall through to decode.
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Resource: op, ID: req.URL.Path}
	case resp.StatusCode == http.StatusBadRequest:
		return &ValidationError{Field: op, Reason: decodeErrorReason(resp)}
	default:
		return &NetworkError{Op: op, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// decodeErrorReason pulls the "error" field out of a JSON error body,
// falling back to a generic reason.
func decodeErrorReason(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return "rejected by platform"
}
