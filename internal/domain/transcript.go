package domain

import "time"

// Conversation is one assistant chat session.
type Conversation struct {
	ID        string
	StartedAt time.Time
}

// Message is a single transcript entry within a conversation.
type Message struct {
	ID             string
	ConversationID string
	Role           Role
	Content        string
	CreatedAt      time.Time
}
