// README: Chat quota and history persistence backed by PostgreSQL.
package chat

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseToken atomically checks the monthly quota and deducts one token.
// It resets the counter to DefaultTokens when last_reset_month is behind the
// current month. Returns ErrInsufficientTokens when 0 rows are updated
// (quota exhausted or user absent).
func (s *Store) UseToken(ctx context.Context, uid string) error {
	month := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE chat_usage SET
			tokens_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE tokens_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR tokens_remaining > 0)
	`, month, DefaultTokens, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientTokens
	}
	return nil
}

// EnsureUser inserts a fresh quota row for uid; an existing row is left
// untouched.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO chat_usage (uid, tokens_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, DefaultTokens, time.Now().Format("2006-01"))
	return err
}

func (s *Store) AppendMessage(ctx context.Context, uid string, m Message) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO chat_messages (uid, sender, text, sent_at)
		VALUES ($1, $2, $3, $4)
	`, uid, m.Sender, m.Text, m.SentAt)
	return err
}

// History returns the latest limit messages for uid, oldest first.
func (s *Store) History(ctx context.Context, uid string, limit int) ([]Message, error) {
	rows, err := s.db.Query(ctx, `
		SELECT sender, text, sent_at FROM (
			SELECT sender, text, sent_at
			FROM chat_messages
			WHERE uid = $1
			ORDER BY sent_at DESC, id DESC
			LIMIT $2
		) recent ORDER BY sent_at ASC
	`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Sender, &m.Text, &m.SentAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
