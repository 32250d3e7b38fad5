// README: Chat service tests (quota retry, exhaustion, history recording).
package chat

import (
	"context"
	"errors"
	"testing"
)

// fakeStore is an in-memory Storage double. tokens tracks remaining quota
// per uid; a uid absent from the map has no row yet.
type fakeStore struct {
	tokens   map[string]int
	messages []Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{tokens: make(map[string]int)}
}

func (f *fakeStore) UseToken(_ context.Context, uid string) error {
	n, ok := f.tokens[uid]
	if !ok || n <= 0 {
		return ErrInsufficientTokens
	}
	f.tokens[uid] = n - 1
	return nil
}

func (f *fakeStore) EnsureUser(_ context.Context, uid string) error {
	if _, ok := f.tokens[uid]; !ok {
		f.tokens[uid] = DefaultTokens
	}
	return nil
}

func (f *fakeStore) AppendMessage(_ context.Context, _ string, m Message) error {
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeStore) History(_ context.Context, _ string, _ int) ([]Message, error) {
	return f.messages, nil
}

func newTestService(store Storage, reply string, genErr error) *Service {
	s := NewService(store, "test-key")
	s.generate = func(_ context.Context, _, _ string) (string, error) {
		return reply, genErr
	}
	return s
}

func TestChat_NewUserInitialisedAndAnswered(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, "Visit in winter.", nil)

	reply, err := svc.Chat(context.Background(), "user1", "When should I visit Jaipur?")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "Visit in winter." {
		t.Errorf("reply = %q", reply)
	}
	if got := store.tokens["user1"]; got != DefaultTokens-1 {
		t.Errorf("tokens after first use = %d, want %d", got, DefaultTokens-1)
	}
	if len(store.messages) != 2 {
		t.Fatalf("recorded %d messages, want 2", len(store.messages))
	}
	if store.messages[0].Sender != "user" || store.messages[1].Sender != "ai" {
		t.Errorf("message senders = %s, %s", store.messages[0].Sender, store.messages[1].Sender)
	}
}

func TestChat_QuotaExhausted(t *testing.T) {
	store := newFakeStore()
	store.tokens["user1"] = 0
	svc := newTestService(store, "unused", nil)

	if _, err := svc.Chat(context.Background(), "user1", "hello"); err != ErrInsufficientTokens {
		t.Errorf("err = %v, want ErrInsufficientTokens", err)
	}
	if len(store.messages) != 0 {
		t.Errorf("messages recorded despite quota failure: %d", len(store.messages))
	}
}

func TestChat_GenerationErrorKeepsNothing(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, "", errors.New("upstream down"))

	if _, err := svc.Chat(context.Background(), "user1", "hello"); err == nil {
		t.Fatal("expected error from generation failure")
	}
	if len(store.messages) != 0 {
		t.Errorf("messages recorded despite generation failure: %d", len(store.messages))
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	svc := newTestService(newFakeStore(), "unused", nil)
	if _, err := svc.Chat(context.Background(), "user1", "   "); err == nil {
		t.Error("expected error for empty message")
	}
}

func TestHistory_LimitNormalised(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, "ok", nil)
	if _, err := svc.Chat(context.Background(), "user1", "first"); err != nil {
		t.Fatalf("chat: %v", err)
	}

	msgs, err := svc.History(context.Background(), "user1", -5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 2 {
		t.Errorf("history = %d messages, want 2", len(msgs))
	}
}
