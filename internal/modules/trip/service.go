// README: Trip service: create/list/visibility, status, expenses, blogs.
package trip

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/types"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("trip not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalidStatus = errors.New("invalid trip status")
)

// Storage is the persistence surface the service needs. *Store is the
// PostgreSQL implementation; tests plug in an in-memory fake.
type Storage interface {
	Create(ctx context.Context, t *Trip) error
	Get(ctx context.Context, id types.ID) (*Trip, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Trip, error)
	ListPublicBlogs(ctx context.Context) ([]*Trip, error)
	UpdateStatus(ctx context.Context, id types.ID, status Status) error
	UpdateBlog(ctx context.Context, id types.ID, blog *Blog) error
	AddExpense(ctx context.Context, id types.ID, e *Expense) error
	Delete(ctx context.Context, id types.ID) error
}

// Estimator produces the budget snapshot stored with a new trip.
type Estimator interface {
	Estimate(ctx context.Context, req estimate.Request) (*estimate.Result, error)
}

// EventSink receives trip lifecycle notifications. May be nil.
type EventSink interface {
	TripEvent(action string, tripID types.ID, ownerID string)
}

type Service struct {
	store     Storage
	estimator Estimator
	events    EventSink
}

func NewService(store Storage, estimator Estimator, events EventSink) *Service {
	return &Service{store: store, estimator: estimator, events: events}
}

type CreateCommand struct {
	OwnerID              string
	Title                string
	Origin               string
	City                 string
	Country              string
	StartDate            time.Time
	EndDate              time.Time
	TransportMode        estimate.Mode
	PartySize            int
	DistanceKm           float64
	IncludeAccommodation bool
	MealMask             string
	IsPublic             bool
}

// Create stores a new trip with a budget snapshot from the cost engine.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Trip, error) {
	if cmd.OwnerID == "" || cmd.Title == "" || cmd.Origin == "" || cmd.City == "" {
		return nil, ErrBadRequest
	}
	if cmd.StartDate.IsZero() || cmd.EndDate.Before(cmd.StartDate) {
		return nil, ErrBadRequest
	}
	if cmd.PartySize < 1 {
		cmd.PartySize = 1
	}
	if cmd.MealMask == "" {
		cmd.MealMask = "1,1,1"
	}

	est, err := s.estimator.Estimate(ctx, estimate.Request{
		Origin:               cmd.Origin,
		Destination:          cmd.City,
		Mode:                 cmd.TransportMode,
		PartySize:            cmd.PartySize,
		TravelDate:           cmd.StartDate.Format("2006-01-02"),
		IncludeAccommodation: cmd.IncludeAccommodation,
		Meals:                estimate.ParseMealMask(cmd.MealMask),
		KnownDistanceKm:      cmd.DistanceKm,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Trip{
		ID:                   newID(),
		OwnerID:              cmd.OwnerID,
		Title:                cmd.Title,
		Origin:               cmd.Origin,
		City:                 cmd.City,
		Country:              cmd.Country,
		StartDate:            cmd.StartDate,
		EndDate:              cmd.EndDate,
		TransportMode:        cmd.TransportMode,
		PartySize:            cmd.PartySize,
		DistanceKm:           cmd.DistanceKm,
		IncludeAccommodation: cmd.IncludeAccommodation,
		MealMask:             cmd.MealMask,
		Budget: Budget{
			Total:     types.Money{Amount: est.TotalCost, Currency: est.Currency},
			Breakdown: est.Breakdown,
			Tips:      est.Tips,
		},
		IsPublic:  cmd.IsPublic,
		Status:    StatusPlanning,
		IsHoliday: est.IsHoliday,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.TripEvent("created", t.ID, t.OwnerID)
	}
	return t, nil
}

// Get returns the trip if uid is allowed to see it.
func (s *Service) Get(ctx context.Context, id types.ID, uid string) (*Trip, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.VisibleTo(uid) {
		return nil, ErrNotAuthorized
	}
	return t, nil
}

// List returns uid's own trips, newest start date first (store ordering).
func (s *Service) List(ctx context.Context, uid string) ([]*Trip, error) {
	return s.store.ListByOwner(ctx, uid)
}

// PublicBlogs returns trips whose blog is published, for unauthenticated
// browsing.
func (s *Service) PublicBlogs(ctx context.Context) ([]*Trip, error) {
	return s.store.ListPublicBlogs(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id types.ID, uid string, status Status) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.requireOwner(ctx, id, uid); err != nil {
		return err
	}
	return s.store.UpdateStatus(ctx, id, status)
}

func (s *Service) AddExpense(ctx context.Context, id types.ID, uid string, e Expense) error {
	if e.Description == "" || e.Amount <= 0 || !ValidExpenseCategory(e.Category) {
		return ErrBadRequest
	}
	if err := s.requireOwner(ctx, id, uid); err != nil {
		return err
	}
	if e.SpentAt.IsZero() {
		e.SpentAt = time.Now()
	}
	return s.store.AddExpense(ctx, id, &e)
}

// PublishBlog attaches the write-up and makes it publicly visible.
func (s *Service) PublishBlog(ctx context.Context, id types.ID, uid string, blog Blog) error {
	if blog.Title == "" || blog.Content == "" {
		return ErrBadRequest
	}
	if err := s.requireOwner(ctx, id, uid); err != nil {
		return err
	}
	now := time.Now()
	blog.Visible = true
	blog.PublishedAt = &now
	return s.store.UpdateBlog(ctx, id, &blog)
}

func (s *Service) Delete(ctx context.Context, id types.ID, uid string) error {
	if err := s.requireOwner(ctx, id, uid); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if s.events != nil {
		s.events.TripEvent("deleted", id, uid)
	}
	return nil
}

func (s *Service) requireOwner(ctx context.Context, id types.ID, uid string) error {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if t.OwnerID != uid {
		return ErrNotAuthorized
	}
	return nil
}

func newID() types.ID {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return types.ID(hex.EncodeToString(b))
}
