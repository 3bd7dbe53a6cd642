package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tuanvule/clinicli/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo using a SQLite database.
type SQLiteTranscriptRepo struct {
	db *sql.DB
}

// NewSQLiteTranscriptRepo creates a new SQLiteTranscriptRepo.
func NewSQLiteTranscriptRepo(db *sql.DB) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: db}
}

func (r *SQLiteTranscriptRepo) CreateConversation(ctx context.Context, c *domain.Conversation) error {
	query := `INSERT INTO conversations (id, started_at) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.StartedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting conversation: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	query := `SELECT id, started_at FROM conversations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c domain.Conversation
	var startedAtStr string
	if err := row.Scan(&c.ID, &startedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("conversation: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning conversation: %w", err)
	}

	var parseErr error
	c.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	return &c, nil
}

func (r *SQLiteTranscriptRepo) ListRecentConversations(ctx context.Context, limit int) ([]*domain.Conversation, error) {
	query := `SELECT id, started_at FROM conversations ORDER BY started_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	defer rows.Close()

	var convs []*domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		var startedAtStr string
		if err := rows.Scan(&c.ID, &startedAtStr); err != nil {
			return nil, fmt.Errorf("scanning conversation row: %w", err)
		}
		c.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		convs = append(convs, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversations: %w", err)
	}
	return convs, nil
}

func (r *SQLiteTranscriptRepo) DeleteConversation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("conversation: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) AppendMessage(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, conversation_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ConversationID,
		string(m.Role),
		m.Content,
		// Nano precision: user/assistant pairs land in the same second
		// and must keep their order.
		m.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	query := `SELECT id, conversation_id, role, content, created_at
		FROM messages WHERE conversation_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var msgs []*domain.Message
	for rows.Next() {
		var m domain.Message
		var role, createdAtStr string
		if err := rows.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		m.Role = domain.Role(role)
		m.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return msgs, nil
}
