package laradoc

import "context"

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// HistoryService stores conversation history per session. Every session
// ID owns an independent, append-only sequence of turns; implementations
// must serialize concurrent appends to the same session.
type HistoryService interface {
	// Turns returns the session's turns in order. A session that has
	// never been written to yields an empty slice, not an error.
	Turns(ctx context.Context, sessionID string) ([]Turn, error)

	// Append adds turns to the end of the session's history.
	Append(ctx context.Context, sessionID string, turns ...Turn) error

	// Clear removes all turns for the session.
	Clear(ctx context.Context, sessionID string) error
}
