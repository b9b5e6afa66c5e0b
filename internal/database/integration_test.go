package database

import (
	"context"
	"path/filepath"
	"testing"

	"flashcards/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Initialize(filepath.Join(t.TempDir(), "decks.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	ctx := context.Background()

	var name string
	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", "decks").Scan(&name)
	if err != nil {
		t.Fatalf("Table decks not found: %v", err)
	}

	// Running again must be a no-op
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", count)
	}
}

// TestUpsertDeck tests that saving a deck twice replaces its body
func TestUpsertDeck(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	if _, err := db.Exec(db.Dialect.UpsertDeckQuery(), "japanese", "Q,A\nCat,ネコ\n", 1); err != nil {
		t.Fatalf("Failed to insert deck: %v", err)
	}
	if _, err := db.Exec(db.Dialect.UpsertDeckQuery(), "japanese", "Q,A\nDog,いぬ\nCat,ネコ\n", 2); err != nil {
		t.Fatalf("Failed to update deck: %v", err)
	}

	var body string
	var cardCount, rows int
	if err := db.QueryRow("SELECT body, card_count FROM decks WHERE name = ?", "japanese").Scan(&body, &cardCount); err != nil {
		t.Fatalf("Failed to read deck: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM decks").Scan(&rows); err != nil {
		t.Fatalf("Failed to count decks: %v", err)
	}

	if rows != 1 {
		t.Errorf("Expected 1 deck row, got %d", rows)
	}
	if cardCount != 2 {
		t.Errorf("Expected card_count 2, got %d", cardCount)
	}
	if body != "Q,A\nDog,いぬ\nCat,ネコ\n" {
		t.Errorf("Unexpected body %q", body)
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO decks (name, body) VALUES (?, ?)", "rolled-back", "Q,A\n"); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM decks WHERE name = ?", "rolled-back").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 decks after rollback, got %d", count)
	}
}

func TestInitializeWithUnknownType(t *testing.T) {
	_, err := InitializeWithConfig(&config.Config{DatabaseType: "oracle"})
	if err == nil {
		t.Fatal("Expected error for unsupported database type")
	}
}
