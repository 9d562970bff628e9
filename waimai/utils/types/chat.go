// waimai/utils/types/chat.go
package types

import (
	"time"

	"waimai/waimai/restaurants"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the session's append-only log. Synthetic marks
// client-generated messages (greeting, injected error text) that must never
// be replayed to the assistant.
type Message struct {
	ID          string                   `json:"id"`
	Role        Role                     `json:"role"`
	Content     string                   `json:"content"`
	Restaurants []restaurants.Restaurant `json:"restaurants,omitempty"`
	Timestamp   time.Time                `json:"timestamp"`
	Synthetic   bool                     `json:"synthetic,omitempty"`
}

// HistoryEntry is the content-only projection of a Message sent to the
// assistant for context.
type HistoryEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string         `json:"message"`
	ConversationHistory []HistoryEntry `json:"conversation_history"`
}

type ChatResponse struct {
	Message     string                          `json:"message"`
	Restaurants []restaurants.RestaurantPayload `json:"restaurants,omitempty"`
	Type        string                          `json:"type,omitempty"`
}

// ErrorBody is the failure payload of the assistant service. Detail is
// preferred for display when both fields are present.
type ErrorBody struct {
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message,omitempty"`
}

type RestaurantListResponse struct {
	Data []restaurants.RestaurantPayload `json:"data"`
}

type CuisineListResponse struct {
	Data []string `json:"data"`
}

// Recommendation is a per-restaurant reason line returned by /api/recommend.
type Recommendation struct {
	RestaurantID int    `json:"restaurant_id"`
	Name         string `json:"name"`
	Reason       string `json:"reason"`
}

type RecommendResponse struct {
	Data            []restaurants.RestaurantPayload `json:"data"`
	Recommendations []Recommendation                `json:"recommendations"`
}
