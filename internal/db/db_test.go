package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

const testMigration = `CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
);

-- +migrate Down
DROP TABLE users;
`

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dir := t.TempDir()
	migrationsDir := filepath.Join(dir, "migrations")
	if err := os.Mkdir(migrationsDir, 0o755); err != nil {
		t.Fatalf("failed to create migrations dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(migrationsDir, "0001_init.sql"), []byte(testMigration), 0o644); err != nil {
		t.Fatalf("failed to write migration: %v", err)
	}
	database, err := Connect(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := Migrate(database, migrationsDir); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	// Running again must be a no-op.
	if err := Migrate(database, migrationsDir); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	return database
}

func TestWithTxCommit(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	err := WithTx(ctx, database, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO users (id, username, password) VALUES (?, ?, ?)`, "u1", "alice", "pw1")
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var count int
	if err := database.Get(&count, `SELECT COUNT(*) FROM users`); err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}

func TestWithTxRollback(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	err := WithTx(ctx, database, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO users (id, username, password) VALUES (?, ?, ?)`, "u1", "alice", "pw1"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO users (id, username, password) VALUES (?, ?, ?)`, "u2", "alice", "pw2")
		return err
	})
	if err == nil {
		t.Fatalf("expected unique violation")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
	var count int
	if err := database.Get(&count, `SELECT COUNT(*) FROM users`); err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to leave 0 users, got %d", count)
	}
}

func TestIsUniqueViolationOtherError(t *testing.T) {
	if IsUniqueViolation(context.Canceled) {
		t.Fatalf("context.Canceled should not be a unique violation")
	}
}
