// README: Trip store backed by PostgreSQL.
package trip

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *Trip) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (
			id, owner_id, title, origin, city, country,
			start_date, end_date, transport_mode, party_size,
			distance_km, include_accommodation, meal_mask,
			budget_total, budget_currency,
			budget_transport, budget_food, budget_accommodation, budget_misc,
			budget_tips, is_public, status, is_holiday,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13,
			$14, $15,
			$16, $17, $18, $19,
			$20, $21, $22, $23,
			$24, $25
		)`,
		string(t.ID), t.OwnerID, t.Title, t.Origin, t.City, t.Country,
		t.StartDate, t.EndDate, string(t.TransportMode), t.PartySize,
		t.DistanceKm, t.IncludeAccommodation, t.MealMask,
		t.Budget.Total.Amount, t.Budget.Total.Currency,
		t.Budget.Breakdown.Transport, t.Budget.Breakdown.Food,
		t.Budget.Breakdown.Accommodation, t.Budget.Breakdown.Miscellaneous,
		t.Budget.Tips, t.IsPublic, string(t.Status), t.IsHoliday,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

const tripColumns = `
	id, owner_id, title, origin, city, country,
	start_date, end_date, transport_mode, party_size,
	distance_km, include_accommodation, meal_mask,
	budget_total, budget_currency,
	budget_transport, budget_food, budget_accommodation, budget_misc,
	budget_tips, is_public, status, is_holiday,
	blog_title, blog_content, blog_photos, blog_visible, blog_published_at,
	created_at, updated_at`

func (s *Store) Get(ctx context.Context, id types.ID) (*Trip, error) {
	row := s.db.QueryRow(ctx, `SELECT`+tripColumns+` FROM trips WHERE id = $1`, string(id))
	t, err := scanTrip(row)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, description, amount, category, spent_at
		FROM trip_expenses WHERE trip_id = $1 ORDER BY spent_at`, string(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.SpentAt); err != nil {
			return nil, err
		}
		t.Expenses = append(t.Expenses, e)
	}
	return t, rows.Err()
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]*Trip, error) {
	rows, err := s.db.Query(ctx,
		`SELECT`+tripColumns+` FROM trips WHERE owner_id = $1 ORDER BY start_date DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrips(rows)
}

func (s *Store) ListPublicBlogs(ctx context.Context) ([]*Trip, error) {
	rows, err := s.db.Query(ctx,
		`SELECT`+tripColumns+` FROM trips WHERE blog_visible ORDER BY blog_published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrips(rows)
}

func (s *Store) UpdateStatus(ctx context.Context, id types.ID, status Status) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE trips SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateBlog(ctx context.Context, id types.ID, blog *Blog) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE trips SET
			blog_title = $1, blog_content = $2, blog_photos = $3,
			blog_visible = $4, blog_published_at = $5, updated_at = NOW()
		WHERE id = $6`,
		blog.Title, blog.Content, blog.Photos,
		blog.Visible, blog.PublishedAt, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) AddExpense(ctx context.Context, id types.ID, e *Expense) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO trip_expenses (trip_id, description, amount, category, spent_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		string(id), e.Description, e.Amount, e.Category, e.SpentAt,
	).Scan(&e.ID)
	return err
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var (
		t           Trip
		id, mode    string
		status      string
		blogTitle   *string
		blogContent *string
		blogPhotos  []string
		blogVisible bool
		publishedAt *time.Time
	)
	err := row.Scan(
		&id, &t.OwnerID, &t.Title, &t.Origin, &t.City, &t.Country,
		&t.StartDate, &t.EndDate, &mode, &t.PartySize,
		&t.DistanceKm, &t.IncludeAccommodation, &t.MealMask,
		&t.Budget.Total.Amount, &t.Budget.Total.Currency,
		&t.Budget.Breakdown.Transport, &t.Budget.Breakdown.Food,
		&t.Budget.Breakdown.Accommodation, &t.Budget.Breakdown.Miscellaneous,
		&t.Budget.Tips, &t.IsPublic, &status, &t.IsHoliday,
		&blogTitle, &blogContent, &blogPhotos, &blogVisible, &publishedAt,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.ID = types.ID(id)
	t.TransportMode = estimate.Mode(mode)
	t.Status = Status(status)
	if blogTitle != nil {
		t.Blog = &Blog{
			Title:       *blogTitle,
			Content:     derefOrEmpty(blogContent),
			Photos:      blogPhotos,
			Visible:     blogVisible,
			PublishedAt: publishedAt,
		}
	}
	return &t, nil
}

func collectTrips(rows pgx.Rows) ([]*Trip, error) {
	var trips []*Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
