package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"workspace-finder-backend/config"
	"workspace-finder-backend/internal/engine"
)

var (
	// ErrUnavailable indicates the Ollama server could not be reached or
	// did not answer in time.
	ErrUnavailable = errors.New("nlp service unavailable")
	// ErrBadResponse indicates the server answered but the payload did not
	// match the expected contract (missing response field, non-JSON
	// criteria). The query cannot proceed; no partial criteria are guessed.
	ErrBadResponse = errors.New("nlp service returned an unusable response")
)

// Client talks to a local Ollama server to turn free-text workspace
// requests into structured criteria.
type Client struct {
	url         string
	model       string
	client      *http.Client
	pingTimeout time.Duration
}

// NewClient creates a client from the NLP configuration.
func NewClient(cfg *config.NLPConfig) *Client {
	return &Client{
		url:   cfg.URL,
		model: cfg.Model,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		pingTimeout: time.Duration(cfg.PingTimeoutSeconds) * time.Second,
	}
}

// generateRequest is the Ollama /api/generate request payload. format=json
// makes the model emit the criteria object directly.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Format string `json:"format"`
	Stream bool   `json:"stream"`
}

// generateResponse is the subset of the Ollama answer we consume: the
// model's output arrives as a JSON string in the response field.
type generateResponse struct {
	Response string `json:"response"`
}

// Check reports whether the Ollama server is reachable. It issues a
// lightweight GET against the base URL (the generate path stripped) with a
// short timeout.
func (c *Client) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL(), nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: ping returned status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// ParseQuery sends the natural-language query to the model and decodes the
// structured criteria it returns.
func (c *Client) ParseQuery(ctx context.Context, query string) (engine.StructuredCriteria, error) {
	var criteria engine.StructuredCriteria

	payload := generateRequest{
		Model:  c.model,
		Prompt: buildParserPrompt(query),
		Format: "json",
		Stream: false,
	}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return criteria, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return criteria, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return criteria, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return criteria, fmt.Errorf("%w: received status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return criteria, fmt.Errorf("failed to read response body: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return criteria, fmt.Errorf("%w: answer is not valid JSON: %v", ErrBadResponse, err)
	}
	if genResp.Response == "" {
		return criteria, fmt.Errorf("%w: answer is missing the 'response' field", ErrBadResponse)
	}

	if err := json.Unmarshal([]byte(genResp.Response), &criteria); err != nil {
		return criteria, fmt.Errorf("%w: model output is not valid criteria JSON: %v", ErrBadResponse, err)
	}

	return criteria, nil
}

func (c *Client) baseURL() string {
	return strings.TrimSuffix(c.url, "/api/generate")
}
