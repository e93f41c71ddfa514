package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/justestif/go-mindful-moments/internal/emotion"
)

const (
	baseURL   = "https://api-inference.huggingface.co/models/"
	userAgent = "mindful-moments/1.0"
)

// Sentinel errors.
var (
	// ErrModelLoading is returned when the hosted model is still warming up
	// after retries.
	ErrModelLoading = errors.New("model is loading")

	// ErrInvalidAPIToken is returned when the API token is rejected.
	ErrInvalidAPIToken = errors.New("invalid API token")

	// ErrNoResult is returned when the API responds without any label/score
	// candidates.
	ErrNoResult = errors.New("classifier returned no result")
)

// Client is a Hugging Face Inference API client for text classification.
type Client struct {
	apiToken   string
	model      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new classifier client from the provided configuration.
func NewClient(cfg *Config) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiToken: cfg.APIToken,
		model:    model,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// inferenceRequest is the JSON request body for the inference endpoint.
type inferenceRequest struct {
	Inputs  string           `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// labelScore is one candidate in the inference response.
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// apiError is the JSON error envelope returned on non-200 responses.
type apiError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// Classify sends text to the hosted model and returns the top-scoring
// label/score pair. Returns ErrNoResult if the model produced no candidates.
func (c *Client) Classify(ctx context.Context, text string) (*emotion.Classification, error) {
	body, err := c.doRequest(ctx, text)
	if err != nil {
		return nil, err
	}

	candidates, err := parseCandidates(body)
	if err != nil {
		return nil, fmt.Errorf("parsing classification response: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoResult
	}

	top := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Score > top.Score {
			top = cand
		}
	}

	return &emotion.Classification{Label: top.Label, Score: top.Score}, nil
}

// parseCandidates decodes the inference response body. The API returns a
// nested array ([[{label,score}...]]) for single-input requests; some models
// return a flat array instead, so both shapes are accepted.
func parseCandidates(body []byte) ([]labelScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}

	var flat []labelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}

// doRequest performs the inference request with retry while the model loads.
// Retries up to 2 times with backoff (2s, 4s).
func (c *Client) doRequest(ctx context.Context, text string) ([]byte, error) {
	delays := []time.Duration{2 * time.Second, 4 * time.Second}
	var lastErr error

	for attempt := 0; attempt <= len(delays); attempt++ {
		// Wait before retry (skip on first attempt)
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delays[attempt-1]):
			}
		}

		body, err := c.doSingleRequest(ctx, text)
		if err == nil {
			return body, nil
		}

		if errors.Is(err, ErrModelLoading) {
			lastErr = err
			continue
		}

		// Non-retryable error
		return nil, err
	}

	return nil, lastErr
}

// doSingleRequest performs a single inference request.
func (c *Client) doSingleRequest(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs:  text,
		Options: inferenceOptions{WaitForModel: false},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.model, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized:
		return nil, ErrInvalidAPIToken
	case http.StatusServiceUnavailable:
		return nil, ErrModelLoading
	default:
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}
}
