package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/testutil"
)

func newConversation(startedAt time.Time) *domain.Conversation {
	return &domain.Conversation{
		ID:        uuid.New().String(),
		StartedAt: startedAt,
	}
}

func newMessage(convID string, role domain.Role, content string, at time.Time) *domain.Message {
	return &domain.Message{
		ID:             uuid.New().String(),
		ConversationID: convID,
		Role:           role,
		Content:        content,
		CreatedAt:      at,
	}
}

func TestTranscriptRepo_CreateAndGetConversation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)
	ctx := context.Background()

	started := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	conv := newConversation(started)
	require.NoError(t, repo.CreateConversation(ctx, conv))

	got, err := repo.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, got.ID)
	assert.True(t, got.StartedAt.Equal(started))
}

func TestTranscriptRepo_GetConversation_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)

	_, err := repo.GetConversation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranscriptRepo_ListRecentConversations(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		conv := newConversation(base.Add(time.Duration(i) * time.Hour))
		require.NoError(t, repo.CreateConversation(ctx, conv))
		ids = append(ids, conv.ID)
	}

	recent, err := repo.ListRecentConversations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Newest first.
	assert.Equal(t, ids[2], recent[0].ID)
	assert.Equal(t, ids[1], recent[1].ID)
}

func TestTranscriptRepo_AppendAndListMessages(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)
	ctx := context.Background()

	conv := newConversation(time.Now().UTC())
	require.NoError(t, repo.CreateConversation(ctx, conv))

	now := time.Now().UTC()
	user := newMessage(conv.ID, domain.RoleUser, "my tooth hurts", now)
	assistant := newMessage(conv.ID, domain.RoleAssistant, "See Dentistry.", now.Add(time.Nanosecond))
	require.NoError(t, repo.AppendMessage(ctx, user))
	require.NoError(t, repo.AppendMessage(ctx, assistant))

	msgs, err := repo.ListMessages(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	// Same-second pairs keep insertion order.
	assert.Equal(t, domain.RoleUser, msgs[0].Role)
	assert.Equal(t, "my tooth hurts", msgs[0].Content)
	assert.Equal(t, domain.RoleAssistant, msgs[1].Role)
}

func TestTranscriptRepo_AppendMessage_UnknownRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)
	ctx := context.Background()

	conv := newConversation(time.Now().UTC())
	require.NoError(t, repo.CreateConversation(ctx, conv))

	bad := newMessage(conv.ID, domain.Role("narrator"), "nope", time.Now().UTC())
	assert.Error(t, repo.AppendMessage(ctx, bad))
}

func TestTranscriptRepo_DeleteConversation_Cascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)
	ctx := context.Background()

	conv := newConversation(time.Now().UTC())
	require.NoError(t, repo.CreateConversation(ctx, conv))
	require.NoError(t, repo.AppendMessage(ctx, newMessage(conv.ID, domain.RoleUser, "hi", time.Now().UTC())))

	require.NoError(t, repo.DeleteConversation(ctx, conv.ID))

	_, err := repo.GetConversation(ctx, conv.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	msgs, err := repo.ListMessages(ctx, conv.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestTranscriptRepo_DeleteConversation_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTranscriptRepo(db)

	err := repo.DeleteConversation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
