package intelligence

import (
	"context"
	"strings"

	"github.com/tuanvule/clinicli/internal/llm"
)

// ChatReply is the assistant's answer to one user turn.
type ChatReply struct {
	Text   string
	Source string // "llm" or "deterministic"
}

// AssistantService answers free-text patient questions, streaming the
// reply token by token.
type AssistantService interface {
	// Reply streams an answer to input within conv, invoking onDelta for
	// each received token. The completed exchange is recorded on conv.
	// onDelta may be nil. A non-nil error with a non-empty reply means
	// the stream was interrupted and the text is partial.
	Reply(ctx context.Context, conv *ChatConversation, input string, onDelta func(string)) (*ChatReply, error)
}

type assistantService struct {
	client llm.Client
}

// NewAssistantService creates an AssistantService backed by an LLM client.
func NewAssistantService(client llm.Client) AssistantService {
	return &assistantService{client: client}
}

func (s *assistantService) Reply(ctx context.Context, conv *ChatConversation, input string, onDelta func(string)) (*ChatReply, error) {
	if conv == nil {
		conv = &ChatConversation{}
	}

	ch, err := s.client.Stream(ctx, llm.ChatRequest{
		Task:     llm.TaskChat,
		Messages: buildChatMessages(conv, input),
	})
	if err != nil {
		reply := offlineReply(input)
		conv.Record(input, reply.Text)
		emit(onDelta, reply.Text)
		return reply, nil
	}

	var b strings.Builder
	for chunk := range ch {
		switch {
		case chunk.Err != nil:
			if b.Len() == 0 {
				reply := offlineReply(input)
				conv.Record(input, reply.Text)
				emit(onDelta, reply.Text)
				return reply, nil
			}
			// Partial answer already shown; report the interruption.
			conv.Record(input, b.String())
			return &ChatReply{Text: b.String(), Source: "llm"}, chunk.Err
		case chunk.Done:
		default:
			b.WriteString(chunk.Text)
			emit(onDelta, chunk.Text)
		}
	}

	conv.Record(input, b.String())
	return &ChatReply{Text: b.String(), Source: "llm"}, nil
}

func buildChatMessages(conv *ChatConversation, input string) []llm.Message {
	msgs := make([]llm.Message, 0, len(conv.Turns)+2)
	msgs = append(msgs, llm.Message{Role: "system", Content: chatSystemPrompt})
	for _, turn := range conv.Turns {
		msgs = append(msgs, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: input})
	return msgs
}

func emit(onDelta func(string), text string) {
	if onDelta != nil && text != "" {
		onDelta(text)
	}
}
