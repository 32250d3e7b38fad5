// README: Post store backed by PostgreSQL.
package post

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Santhosh-R2/smart-travel/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, p *Post) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO posts (
			id, author_id, place_id, place_name, content, image, rating,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(p.ID), p.AuthorID, p.PlaceID, p.PlaceName, p.Content,
		p.Image, p.Rating, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (s *Store) ListByPlace(ctx context.Context, placeID string) ([]*Post, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, author_id, place_id, place_name, content, image, rating,
		       created_at, updated_at
		FROM posts WHERE place_id = $1
		ORDER BY created_at DESC`, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		var (
			p  Post
			id string
		)
		if err := rows.Scan(&id, &p.AuthorID, &p.PlaceID, &p.PlaceName,
			&p.Content, &p.Image, &p.Rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.ID = types.ID(id)
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}
