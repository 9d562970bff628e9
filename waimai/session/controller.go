package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"waimai/waimai/restaurants"
	"waimai/waimai/services/assistant"
	"waimai/waimai/utils/logging"
	"waimai/waimai/utils/types"
)

// Greeting seeds every new session. It is synthetic: shown to the user but
// never replayed to the assistant.
const Greeting = "你好！我是AI外卖推荐助手🍽️。告诉我你想吃什么，我会根据你的位置和需求为你推荐合适的餐厅！"

const (
	errGeneric   = "抱歉，发送消息时出现错误，请稍后重试。"
	errMalformed = "错误：响应数据格式错误"
	errPrefix    = "错误："
)

// AssistantClient is the outbound dependency of the controller.
type AssistantClient interface {
	Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
}

// Controller owns one session's append-only message log and busy flag.
// The busy flag is the single concurrency guard: at most one request is
// outstanding, and Submit while busy is a silent no-op.
type Controller struct {
	mu       sync.Mutex
	client   AssistantClient
	messages []types.Message
	busy     bool
	now      func() time.Time
}

func NewController(client AssistantClient) *Controller {
	c := &Controller{client: client, now: time.Now}
	c.messages = append(c.messages, types.Message{
		ID:        uuid.New().String(),
		Role:      types.RoleAssistant,
		Content:   Greeting,
		Timestamp: c.now(),
		Synthetic: true,
	})
	return c
}

// Messages returns a snapshot of the log in creation order.
func (c *Controller) Messages() []types.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Busy reports whether a request is outstanding.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Submit sends text to the assistant and appends both sides of the exchange
// to the log. Blank input or a submit while busy is ignored. Every outcome,
// including failure, settles with busy cleared and exactly one assistant
// message appended after the user message.
func (c *Controller) Submit(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return
	}
	c.busy = true
	// History is built from the log as it stood before this turn; the new
	// message rides in the dedicated request field instead.
	history := BuildHistory(c.messages)
	c.messages = append(c.messages, types.Message{
		ID:        uuid.New().String(),
		Role:      types.RoleUser,
		Content:   text,
		Timestamp: c.now(),
	})
	c.mu.Unlock()

	resp, err := c.client.Chat(ctx, types.ChatRequest{
		Message:             text,
		ConversationHistory: history,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() { c.busy = false }()

	if err == nil && (resp == nil || resp.Message == "") {
		err = assistant.ErrMalformedResponse
	}
	if err != nil {
		if logging.ErrorLogger != nil {
			logging.ErrorLogger.Error("chat request failed", zap.Error(err))
		}
		c.messages = append(c.messages, types.Message{
			ID:        uuid.New().String(),
			Role:      types.RoleAssistant,
			Content:   userFacingError(err),
			Timestamp: c.now(),
			Synthetic: true,
		})
		return
	}

	c.messages = append(c.messages, types.Message{
		ID:          uuid.New().String(),
		Role:        types.RoleAssistant,
		Content:     resp.Message,
		Restaurants: restaurants.NormalizeAll(resp.Restaurants),
		Timestamp:   c.now(),
	})
}

// userFacingError maps a request failure to the assistant-role text shown
// in the log.
func userFacingError(err error) string {
	var serverErr *assistant.ServerError
	var transportErr *assistant.TransportError
	switch {
	case errors.Is(err, assistant.ErrMalformedResponse):
		return errMalformed
	case errors.As(err, &serverErr):
		if serverErr.Detail != "" {
			return errPrefix + serverErr.Detail
		}
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return errGeneric
	case errors.As(err, &transportErr):
		return errPrefix + transportErr.Err.Error()
	default:
		return errGeneric
	}
}
