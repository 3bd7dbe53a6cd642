package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/repository"
)

type transcriptService struct {
	transcripts repository.TranscriptRepo
}

// NewTranscriptService creates a TranscriptService over the given repo.
func NewTranscriptService(transcripts repository.TranscriptRepo) TranscriptService {
	return &transcriptService{transcripts: transcripts}
}

func (s *transcriptService) StartConversation(ctx context.Context) (*domain.Conversation, error) {
	conv := &domain.Conversation{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
	if err := s.transcripts.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (s *transcriptService) RecordExchange(ctx context.Context, conversationID, userInput, assistantReply string) error {
	now := time.Now().UTC()
	user := &domain.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Role:           domain.RoleUser,
		Content:        userInput,
		CreatedAt:      now,
	}
	if err := s.transcripts.AppendMessage(ctx, user); err != nil {
		return err
	}
	assistant := &domain.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		Role:           domain.RoleAssistant,
		Content:        assistantReply,
		CreatedAt:      now.Add(time.Nanosecond),
	}
	return s.transcripts.AppendMessage(ctx, assistant)
}

func (s *transcriptService) GetTranscript(ctx context.Context, id string) (*domain.Conversation, []*domain.Message, error) {
	resolved, err := s.resolveConversationID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	conv, err := s.transcripts.GetConversation(ctx, resolved)
	if err != nil {
		return nil, nil, err
	}
	msgs, err := s.transcripts.ListMessages(ctx, resolved)
	if err != nil {
		return nil, nil, err
	}
	return conv, msgs, nil
}

// resolveConversationID accepts a full ID or a unique prefix of at least
// four characters, as shown in the history listing.
func (s *transcriptService) resolveConversationID(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	if _, err := s.transcripts.GetConversation(ctx, id); err == nil {
		return id, nil
	}
	if len(id) < 4 {
		return "", fmt.Errorf("conversation ID %q is too short, use at least 4 characters", id)
	}

	recent, err := s.transcripts.ListRecentConversations(ctx, 500)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, c := range recent {
		if strings.HasPrefix(c.ID, id) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: conversation %s", repository.ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("conversation ID %q is ambiguous (%d matches)", id, len(matches))
	}
}

func (s *transcriptService) ListRecent(ctx context.Context, limit int) ([]*domain.Conversation, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.transcripts.ListRecentConversations(ctx, limit)
}

func (s *transcriptService) Export(ctx context.Context, conversationID, dir string) (string, error) {
	conv, msgs, err := s.GetTranscript(ctx, conversationID)
	if err != nil {
		return "", err
	}
	if len(msgs) == 0 {
		return "", fmt.Errorf("conversation %s has no messages", conversationID)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("Clinic Assistant CLI - Conversation Log\n\n")
	for _, m := range msgs {
		switch m.Role {
		case domain.RoleUser:
			b.WriteString("User: " + m.Content + "\n\n")
		case domain.RoleAssistant:
			b.WriteString("Assistant: " + m.Content + "\n\n")
		}
	}

	name := fmt.Sprintf("conversation_%s.txt", conv.StartedAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing conversation log: %w", err)
	}
	return path, nil
}

func (s *transcriptService) Delete(ctx context.Context, id string) error {
	resolved, err := s.resolveConversationID(ctx, id)
	if err != nil {
		return err
	}
	return s.transcripts.DeleteConversation(ctx, resolved)
}
