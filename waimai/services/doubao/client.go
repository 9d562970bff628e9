// waimai/services/doubao/client.go
package doubao

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"waimai/waimai/config"
	"waimai/waimai/utils/logging"
)

// Client calls the Doubao (Ark) OpenAI-compatible chat-completions endpoint.
type Client struct {
	http  *resty.Client
	model string
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewClient returns nil when no API key is configured; callers fall back to
// rule-based recommendation in that case.
func NewClient(cfg config.Config) *Client {
	if cfg.DoubaoAPIKey == "" {
		return nil
	}
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.DoubaoAPIURL).
			SetTimeout(cfg.RequestTimeout).
			SetAuthToken(cfg.DoubaoAPIKey).
			SetHeader("Content-Type", "application/json"),
		model: cfg.DoubaoModel,
	}
}

// Run executes a non-streaming chat completion and returns the first
// choice's content.
func (c *Client) Run(ctx context.Context, messages []ChatMessage) (string, error) {
	defer logging.LogDuration(ctx, "doubao_run")()

	var out struct {
		Choices []struct {
			Message ChatMessage `json:"message"`
		} `json:"choices"`
	}
	var errBody struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"model":       c.model,
			"messages":    messages,
			"temperature": 0.7,
			"max_tokens":  1000,
		}).
		SetResult(&out).
		SetError(&errBody).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if errBody.Error.Message != "" {
			return "", fmt.Errorf("doubao: %s", errBody.Error.Message)
		}
		return "", fmt.Errorf("doubao: status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("doubao: no choices returned")
	}
	return out.Choices[0].Message.Content, nil
}
