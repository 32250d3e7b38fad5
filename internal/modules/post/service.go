// README: Post service: create and list-by-place for community reviews.
package post

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/Santhosh-R2/smart-travel/internal/types"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Storage is the persistence surface the service needs. *Store is the
// PostgreSQL implementation; tests plug in an in-memory fake.
type Storage interface {
	Create(ctx context.Context, p *Post) error
	ListByPlace(ctx context.Context, placeID string) ([]*Post, error)
}

type Service struct {
	store Storage
}

func NewService(store Storage) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	AuthorID  string
	PlaceID   string
	PlaceName string
	Content   string
	Image     string
	Rating    int
}

// Create stores a new post. A zero rating defaults to MaxRating.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Post, error) {
	cmd.Content = strings.TrimSpace(cmd.Content)
	if cmd.AuthorID == "" || cmd.PlaceID == "" || cmd.PlaceName == "" || cmd.Content == "" {
		return nil, ErrBadRequest
	}
	if cmd.Rating == 0 {
		cmd.Rating = MaxRating
	}
	if cmd.Rating < MinRating || cmd.Rating > MaxRating {
		return nil, ErrInvalidRating
	}

	now := time.Now()
	p := &Post{
		ID:        newID(),
		AuthorID:  cmd.AuthorID,
		PlaceID:   cmd.PlaceID,
		PlaceName: cmd.PlaceName,
		Content:   cmd.Content,
		Image:     cmd.Image,
		Rating:    cmd.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByPlace returns the posts for a place, newest first (store
// ordering). An unknown place yields an empty list, not an error.
func (s *Service) ListByPlace(ctx context.Context, placeID string) ([]*Post, error) {
	if placeID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByPlace(ctx, placeID)
}

func newID() types.ID {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return types.ID(hex.EncodeToString(b))
}
