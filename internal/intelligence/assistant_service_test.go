package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanvule/clinicli/internal/llm"
)

func TestAssistantReply_StreamsTokens(t *testing.T) {
	client := &mockLLMClient{response: "Drink fluids and rest."}
	svc := NewAssistantService(client)

	conv := &ChatConversation{}
	var streamed string
	reply, err := svc.Reply(context.Background(), conv, "I have a cold", func(delta string) {
		streamed += delta
	})

	require.NoError(t, err)
	assert.Equal(t, "llm", reply.Source)
	assert.Equal(t, "Drink fluids and rest.", reply.Text)
	assert.Equal(t, "Drink fluids and rest.", streamed)
	assert.Equal(t, llm.TaskChat, client.lastRequest.Task)

	// Exchange recorded on the conversation.
	require.Len(t, conv.Turns, 2)
	assert.Equal(t, "user", conv.Turns[0].Role)
	assert.Equal(t, "I have a cold", conv.Turns[0].Content)
	assert.Equal(t, "assistant", conv.Turns[1].Role)
}

func TestAssistantReply_SendsHistory(t *testing.T) {
	client := &mockLLMClient{response: "Sure."}
	svc := NewAssistantService(client)

	conv := &ChatConversation{}
	_, err := svc.Reply(context.Background(), conv, "first question", nil)
	require.NoError(t, err)
	_, err = svc.Reply(context.Background(), conv, "second question", nil)
	require.NoError(t, err)

	// system + 2 prior turns + new user input
	msgs := client.lastRequest.Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "first question", msgs[1].Content)
	assert.Equal(t, "second question", msgs[3].Content)
}

func TestAssistantReply_OfflineFallback(t *testing.T) {
	svc := NewAssistantService(&mockLLMClient{err: llm.ErrNotConfigured})

	conv := &ChatConversation{}
	var streamed string
	reply, err := svc.Reply(context.Background(), conv, "my tooth hurts", func(delta string) {
		streamed += delta
	})

	require.NoError(t, err)
	assert.Equal(t, "deterministic", reply.Source)
	assert.Contains(t, reply.Text, "/book")
	assert.Contains(t, reply.Text, "Dentistry")
	assert.Equal(t, reply.Text, streamed)
	assert.Len(t, conv.Turns, 2)
}

func TestAssistantReply_FallbackOnImmediateStreamError(t *testing.T) {
	client := &mockLLMClient{
		response:       "never delivered",
		streamErr:      llm.ErrUnavailable,
		streamErrAfter: 0,
	}
	svc := NewAssistantService(client)

	reply, err := svc.Reply(context.Background(), &ChatConversation{}, "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "deterministic", reply.Source)
}

func TestAssistantReply_PartialTextOnMidStreamError(t *testing.T) {
	client := &mockLLMClient{
		response:       "partial answer",
		streamErr:      llm.ErrTimeout,
		streamErrAfter: 7,
	}
	svc := NewAssistantService(client)

	conv := &ChatConversation{}
	reply, err := svc.Reply(context.Background(), conv, "hello", nil)

	require.ErrorIs(t, err, llm.ErrTimeout)
	assert.Equal(t, "llm", reply.Source)
	assert.Equal(t, "partial", reply.Text)

	// The partial exchange is still recorded.
	require.Len(t, conv.Turns, 2)
	assert.Equal(t, "partial", conv.Turns[1].Content)
}
