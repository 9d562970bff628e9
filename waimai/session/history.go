package session

import "waimai/waimai/utils/types"

// BuildHistory projects the log to the {role, content} entries replayed to
// the assistant. Synthetic messages (the seeded greeting and injected error
// text) are dropped so they never pollute the assistant's context. Pure:
// same log in, same history out.
func BuildHistory(messages []types.Message) []types.HistoryEntry {
	var history []types.HistoryEntry
	for _, msg := range messages {
		if msg.Synthetic {
			continue
		}
		history = append(history, types.HistoryEntry{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	return history
}
