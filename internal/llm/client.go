// Package llm is the single point of contact with the generation backend
// (the Gemini generateContent REST API). It extracts plain text from the
// structured response; it never validates or parses the text itself.
package llm

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
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 60 * time.Second
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

var (
	ErrNoCandidates = errors.New("generation response contains no candidates")
	ErrEmptyContent = errors.New("generation candidate contains no text part")
)

// Turn is one prior message of a generation conversation.
type Turn struct {
	Role string
	Text string
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string        `json:"role,omitempty"`
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a single-turn prompt and returns the first candidate's
// first content part as plain text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{
			{Role: RoleUser, Parts: []contentPart{{Text: prompt}}},
		},
	}
	return c.generate(ctx, req)
}

// CompleteWithHistory opens a conversation seeded with the given turns and
// sends finalPrompt as the next user turn. Extraction follows the same
// rule as Complete.
func (c *Client) CompleteWithHistory(ctx context.Context, turns []Turn, finalPrompt string) (string, error) {
	contents := make([]content, 0, len(turns)+1)
	for _, turn := range turns {
		contents = append(contents, content{
			Role:  turn.Role,
			Parts: []contentPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, content{
		Role:  RoleUser,
		Parts: []contentPart{{Text: finalPrompt}},
	})
	return c.generate(ctx, generateRequest{Contents: contents})
}

func (c *Client) generate(ctx context.Context, payload generateRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generation backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("generation backend: status %d: %s", resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("generation backend: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", ErrEmptyContent
	}

	return parts[0].Text, nil
}
