package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"event-explainer-service/internal/analysis/core/ports"
	"event-explainer-service/internal/metrics"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "amazon/nova-2-lite-v1:free"
	defaultTimeout = 30 * time.Second

	// Low temperature for consistent, structured output.
	completionTemperature = 0.2
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger

	// Referer and Title fill OpenRouter's app attribution headers.
	Referer string
	Title   string
}

// Client talks to the OpenRouter chat-completions API.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	referer string
	title   string
	client  *http.Client
	logger  *slog.Logger
}

var _ ports.CompletionPort = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Referer == "" {
		cfg.Referer = "http://localhost"
	}
	if cfg.Title == "" {
		cfg.Title = "StripeEventExplainer"
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		referer: cfg.Referer,
		title:   cfg.Title,
		client:  newHTTPClient(cfg.Timeout),
		logger:  cfg.Logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Complete sends a single system+user instruction pair and returns the raw
// text of the first choice. One call per request; no retries.
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: completionTemperature,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("HTTP-Referer", c.referer)
	httpReq.Header.Set("X-Title", c.title)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read openrouter response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("openrouter returned non-success status",
			"status", resp.StatusCode, "model", c.model)
		return "", fmt.Errorf("openrouter API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("decode openrouter response: %w", err)
	}
	if chatResp.Error.Message != "" {
		return "", fmt.Errorf("openrouter API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from openrouter")
	}

	content := chatResp.Choices[0].Message.Content
	c.logger.Debug("completion received", "model", c.model, "bytes", len(content))

	return content, nil
}

// newHTTPClient returns an HTTP client with connection pooling tuned for a
// single upstream host.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
