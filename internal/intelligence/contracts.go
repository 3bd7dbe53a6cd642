package intelligence

// ConversationTurn is one user or assistant turn in a chat.
type ConversationTurn struct {
	Role    string // "user" or "assistant"
	Content string
}

// ChatConversation holds multi-turn assistant chat state for one session.
type ChatConversation struct {
	Turns []ConversationTurn
}

// Record appends a completed user/assistant exchange.
func (c *ChatConversation) Record(userInput, assistantReply string) {
	c.Turns = append(c.Turns,
		ConversationTurn{Role: "user", Content: userInput},
		ConversationTurn{Role: "assistant", Content: assistantReply},
	)
}
