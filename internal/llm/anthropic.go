package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

const (
	defaultBaseURL   = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"
	defaultMaxTokens = 4000
)

// AnthropicClient talks to the Anthropic messages API over plain HTTP.
// Per-attempt deadlines are the caller's job (via ctx); the underlying
// http.Client carries no timeout of its own so that the retry layer can
// issue a final untimed attempt.
type AnthropicClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewAnthropicClient() *AnthropicClient {
	return &AnthropicClient{
		apiKey:  os.Getenv("ANTHROPIC_API_KEY"),
		model:   os.Getenv("ANTHROPIC_MODEL"),
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

// Complete sends a text-only prompt and returns the reply text.
func (a *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	return a.send(ctx, []contentBlock{
		{Type: "text", Text: prompt},
	})
}

// CompleteVision sends a prompt together with a base64-encoded image.
// The image block goes first; the models read attachments before text.
func (a *AnthropicClient) CompleteVision(ctx context.Context, prompt, mediaType, imageBase64 string) (string, error) {
	return a.send(ctx, []contentBlock{
		{Type: "image", Source: &imageSource{
			Type:      "base64",
			MediaType: mediaType,
			Data:      imageBase64,
		}},
		{Type: "text", Text: prompt},
	})
}

func (a *AnthropicClient) send(ctx context.Context, content []contentBlock) (string, error) {
	if a.apiKey == "" {
		return "", errors.New("missing ANTHROPIC_API_KEY")
	}
	if a.model == "" {
		return "", errors.New("missing ANTHROPIC_MODEL")
	}

	payload := map[string]any{
		"model":      a.model,
		"max_tokens": defaultMaxTokens,
		"messages": []message{
			{Role: "user", Content: content},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.baseURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrTimeout
		}
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode model response: %w", err)
	}

	if len(result.Content) == 0 {
		return "", errors.New("empty model response")
	}

	return result.Content[0].Text, nil
}
