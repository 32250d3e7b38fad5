// README: AI travel assistant with a monthly per-user token quota.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"
)

// DefaultTokens is the monthly question allowance per user.
const DefaultTokens = 100

var ErrInsufficientTokens = errors.New("monthly AI quota exhausted")

const assistantPreamble = "You are a travel planning assistant for trips within India. " +
	"Answer briefly and practically. Question: "

// Message is one chat turn, persisted for history replay.
type Message struct {
	Sender string    `json:"sender"` // "user" or "ai"
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

// Storage persists quotas and chat history. *Store is the PostgreSQL
// implementation.
type Storage interface {
	UseToken(ctx context.Context, uid string) error
	EnsureUser(ctx context.Context, uid string) error
	AppendMessage(ctx context.Context, uid string, m Message) error
	History(ctx context.Context, uid string, limit int) ([]Message, error)
}

type generateFunc func(ctx context.Context, apiKey, prompt string) (string, error)

type Service struct {
	store    Storage
	apiKey   string
	generate generateFunc // swapped out in tests
}

func NewService(store Storage, apiKey string) *Service {
	return &Service{store: store, apiKey: apiKey, generate: callGemini}
}

// Chat deducts a token, asks the model, and records both turns. A missing
// quota row is initialised on first use and the deduction retried once.
func (s *Service) Chat(ctx context.Context, uid, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errors.New("empty message")
	}

	if err := s.useToken(ctx, uid); err != nil {
		return "", err
	}

	reply, err := s.generate(ctx, s.apiKey, assistantPreamble+message)
	if err != nil {
		return "", err
	}

	now := time.Now()
	// History is best-effort; a failed append must not eat the reply.
	_ = s.store.AppendMessage(ctx, uid, Message{Sender: "user", Text: message, SentAt: now})
	_ = s.store.AppendMessage(ctx, uid, Message{Sender: "ai", Text: reply, SentAt: now})

	return reply, nil
}

// History returns the most recent turns for uid, oldest first.
func (s *Service) History(ctx context.Context, uid string, limit int) ([]Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.store.History(ctx, uid, limit)
}

func (s *Service) useToken(ctx context.Context, uid string) error {
	err := s.store.UseToken(ctx, uid)
	if err != ErrInsufficientTokens {
		return err
	}

	// Row may be missing: create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseToken(ctx, uid)
}
