// Package chat talks to the external answer service that backs the campus
// chatbot. The service occasionally needs its agent rebuilt and can be slow
// to respond, so every ask goes through a bounded retry loop.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"campus-notice-backend/pkg/apperr"
)

type Client struct {
	baseURL    string
	maxRetries int
	httpClient *http.Client
}

func NewClient(baseURL string, maxRetries int, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		maxRetries: maxRetries,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type answerEnvelope struct {
	IsSuccess  bool   `json:"isSuccess"`
	HTTPStatus int    `json:"httpStatus"`
	Message    string `json:"message"`
	Data       struct {
		Answer string `json:"answer"`
	} `json:"data"`
}

// Ask forwards a question and returns the raw answer text. Each attempt first
// warms up the remote agent via /build (failures there are ignored), then
// posts to /chat. Attempts back off linearly; once retries are exhausted the
// whole call fails as a single upstream error.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		c.warmup(ctx)

		answer, err := c.ask(ctx, question)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		if attempt < c.maxRetries {
			log.Printf("chat attempt %d/%d failed: %v", attempt, c.maxRetries, err)
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return "", apperr.Wrap(apperr.Upstream, "chat service unavailable", ctx.Err())
			}
		}
	}

	return "", apperr.Wrap(apperr.Upstream, "chat service unavailable", lastErr)
}

// warmup initializes the remote agent. Best effort: the /chat call decides
// success or failure.
func (c *Client) warmup(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/build", bytes.NewReader([]byte("{}")))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("chat agent warmup failed (continuing): %v", err)
		return
	}
	resp.Body.Close()
}

func (c *Client) ask(ctx context.Context, question string) (string, error) {
	body, err := json.Marshal(map[string]string{"question": question})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat service error (%d): %s", resp.StatusCode, string(respBody))
	}

	var envelope answerEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if !envelope.IsSuccess {
		return "", fmt.Errorf("chat service error: %s", envelope.Message)
	}

	return envelope.Data.Answer, nil
}
