// waimai/services/assistant/client.go
package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"waimai/waimai/config"
	"waimai/waimai/restaurants"
	"waimai/waimai/utils/logging"
	"waimai/waimai/utils/types"
)

// ErrMalformedResponse is returned when the service answers with a success
// status but the body is missing the required message field.
var ErrMalformedResponse = errors.New("assistant: malformed response")

// ServerError is a failure response from the assistant service. Detail is
// preferred over Message for display.
type ServerError struct {
	StatusCode int
	Detail     string
	Message    string
}

func (e *ServerError) Error() string {
	reason := e.Detail
	if reason == "" {
		reason = e.Message
	}
	return fmt.Sprintf("assistant: server error (status %d): %s", e.StatusCode, reason)
}

// TransportError wraps a failure where no response was received at all
// (connection refused, timeout, DNS).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "assistant: transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client talks to the food-recommendation assistant service.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.AssistantBaseURL).
			SetTimeout(cfg.RequestTimeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// Chat sends the current message plus the conversation history and returns
// the assistant reply with raw restaurant records.
func (c *Client) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	defer logging.LogDuration(ctx, "assistant_chat")()

	var out types.ChatResponse
	var errBody types.ErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&errBody).
		Post("/api/chat")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		return nil, &ServerError{
			StatusCode: resp.StatusCode(),
			Detail:     errBody.Detail,
			Message:    errBody.Message,
		}
	}
	if out.Message == "" {
		return nil, ErrMalformedResponse
	}
	return &out, nil
}

// Restaurants fetches the full catalog.
func (c *Client) Restaurants(ctx context.Context) ([]restaurants.RestaurantPayload, error) {
	defer logging.LogDuration(ctx, "assistant_restaurants")()

	var out types.RestaurantListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/restaurants")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		return nil, &ServerError{StatusCode: resp.StatusCode()}
	}
	return out.Data, nil
}

// Cuisines fetches the list of distinct cuisines.
func (c *Client) Cuisines(ctx context.Context) ([]string, error) {
	defer logging.LogDuration(ctx, "assistant_cuisines")()

	var out types.CuisineListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/cuisines")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		return nil, &ServerError{StatusCode: resp.StatusCode()}
	}
	return out.Data, nil
}

// Recommend runs a criteria-based recommendation.
func (c *Client) Recommend(ctx context.Context, criteria restaurants.Criteria) (*types.RecommendResponse, error) {
	defer logging.LogDuration(ctx, "assistant_recommend")()

	var out types.RecommendResponse
	var errBody types.ErrorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(criteria).
		SetResult(&out).
		SetError(&errBody).
		Post("/api/recommend")
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		return nil, &ServerError{
			StatusCode: resp.StatusCode(),
			Detail:     errBody.Detail,
			Message:    errBody.Message,
		}
	}
	return &out, nil
}
