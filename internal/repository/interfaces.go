package repository

import (
	"context"
	"errors"

	"github.com/tuanvule/clinicli/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// TranscriptRepo persists assistant conversations and their messages.
type TranscriptRepo interface {
	CreateConversation(ctx context.Context, c *domain.Conversation) error
	GetConversation(ctx context.Context, id string) (*domain.Conversation, error)
	ListRecentConversations(ctx context.Context, limit int) ([]*domain.Conversation, error)
	DeleteConversation(ctx context.Context, id string) error

	AppendMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error)
}
