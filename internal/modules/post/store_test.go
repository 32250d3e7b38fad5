// README: DB-backed post store tests; skipped unless TRAVEL_TEST_DSN is set.
package post

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
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

	if _, err := db.Exec(ctx, "TRUNCATE TABLE posts"); err != nil {
		t.Fatalf("truncate posts: %v", err)
	}

	return NewStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0003_posts.sql"))
	if err != nil {
		return err
	}
	cleaned := stripSQLComments(string(content))
	for _, stmt := range splitSQL(cleaned) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
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

func samplePost(author, placeID, content string, at time.Time) *Post {
	return &Post{
		ID:        newID(),
		AuthorID:  author,
		PlaceID:   placeID,
		PlaceName: "Amber Fort",
		Content:   content,
		Rating:    5,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestStore_CreateAndListByPlace(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	placeID := "ChIJqVKY50NjDDkRpwLEzK3b9C4"
	older := samplePost("user1", placeID, "hire a guide at the gate", now.Add(-time.Hour))
	newer := samplePost("user2", placeID, "sunset view from the ramparts", now)
	other := samplePost("user1", "ChIJ0dummyOtherPlace", "different place", now)

	for _, p := range []*Post{older, newer, other} {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := store.ListByPlace(ctx, placeID)
	if err != nil {
		t.Fatalf("ListByPlace: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("order = [%s %s], want newest first", got[0].ID, got[1].ID)
	}
	if got[0].PlaceName != "Amber Fort" || got[0].Rating != 5 {
		t.Errorf("round-trip mismatch: %+v", got[0])
	}
}

func TestStore_ListByPlaceEmpty(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.ListByPlace(context.Background(), "ChIJnothingHere")
	if err != nil {
		t.Fatalf("ListByPlace: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
