// README: DB-backed store tests; skipped unless TRAVEL_TEST_DSN is set.
package trip

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/types"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TRAVEL_TEST_DSN")
	if dsn == "" {
		t.Skip("TRAVEL_TEST_DSN not set; skipping DB-backed store tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE trip_expenses, trips"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return NewStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	for _, name := range []string{"0001_init.sql", "0002_chat.sql", "0003_posts.sql"} {
		path := filepath.Join(root, "migrations", name)
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cleaned := stripSQLComments(string(content))
		for _, stmt := range splitSQL(cleaned) {
			if _, err := db.Exec(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func sampleTrip(owner string) *Trip {
	now := time.Now().UTC().Truncate(time.Second)
	return &Trip{
		ID:            newID(),
		OwnerID:       owner,
		Title:         "Western Ghats loop",
		Origin:        "Pune",
		City:          "Mahabaleshwar",
		Country:       "India",
		StartDate:     now.AddDate(0, 1, 0),
		EndDate:       now.AddDate(0, 1, 3),
		TransportMode: estimate.ModeCar,
		PartySize:     3,
		DistanceKm:    120,
		MealMask:      "1,1,1",
		Budget: Budget{
			Total:     types.Money{Amount: 4200, Currency: "INR"},
			Breakdown: estimate.Breakdown{Transport: 630, Food: 1800, Accommodation: 1500, Miscellaneous: 270},
			Tips:      "Check weather before packing. Carry a reusable water bottle to save money.",
		},
		Status:    StatusPlanning,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	want := sampleTrip("owner1")
	if err := store.Create(ctx, want); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != want.Title || got.OwnerID != want.OwnerID {
		t.Errorf("got %q/%q, want %q/%q", got.Title, got.OwnerID, want.Title, want.OwnerID)
	}
	if got.Budget.Total != want.Budget.Total {
		t.Errorf("budget total %+v, want %+v", got.Budget.Total, want.Budget.Total)
	}
	if got.Budget.Breakdown != want.Budget.Breakdown {
		t.Errorf("breakdown %+v, want %+v", got.Budget.Breakdown, want.Budget.Breakdown)
	}
	if got.Blog != nil {
		t.Errorf("expected no blog on a fresh trip")
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), types.ID("00000000000000000000000000000000"))
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_StatusAndExpenses(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tr := sampleTrip("owner1")
	if err := store.Create(ctx, tr); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.UpdateStatus(ctx, tr.ID, StatusOngoing); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := store.UpdateStatus(ctx, types.ID("missing"), StatusOngoing); err != ErrNotFound {
		t.Errorf("missing trip: err = %v, want ErrNotFound", err)
	}

	e := &Expense{Description: "toll plaza", Amount: 120, Category: "Transport", SpentAt: time.Now().UTC()}
	if err := store.AddExpense(ctx, tr.ID, e); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if e.ID == 0 {
		t.Error("expected expense id from RETURNING")
	}

	got, err := store.Get(ctx, tr.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusOngoing {
		t.Errorf("status = %q, want ongoing", got.Status)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Amount != 120 {
		t.Errorf("expenses = %+v, want one of amount 120", got.Expenses)
	}
}

func TestStore_BlogLifecycle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tr := sampleTrip("owner1")
	if err := store.Create(ctx, tr); err != nil {
		t.Fatalf("create: %v", err)
	}

	blogs, err := store.ListPublicBlogs(ctx)
	if err != nil {
		t.Fatalf("list blogs: %v", err)
	}
	if len(blogs) != 0 {
		t.Fatalf("expected no public blogs yet, got %d", len(blogs))
	}

	now := time.Now().UTC()
	blog := &Blog{
		Title:       "Strawberry country",
		Content:     "Three days above the plateau.",
		Photos:      []string{"https://example.com/p1.jpg"},
		Visible:     true,
		PublishedAt: &now,
	}
	if err := store.UpdateBlog(ctx, tr.ID, blog); err != nil {
		t.Fatalf("update blog: %v", err)
	}

	blogs, err = store.ListPublicBlogs(ctx)
	if err != nil {
		t.Fatalf("list blogs: %v", err)
	}
	if len(blogs) != 1 || blogs[0].Blog == nil || blogs[0].Blog.Title != blog.Title {
		t.Fatalf("public blogs = %+v, want the published one", blogs)
	}
}

func TestStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tr := sampleTrip("owner1")
	if err := store.Create(ctx, tr); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Delete(ctx, tr.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, tr.ID); err != ErrNotFound {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}
