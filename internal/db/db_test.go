package db

import (
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestConnect(t *testing.T) {
	dbx, err := Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer dbx.Close()

	if err := EnsureSchema(dbx); err != nil {
		t.Fatalf("create schema: %v", err)
	}
}

func TestConnect_UnreachableDSN(t *testing.T) {
	// the parent directory does not exist, so the ping fails
	dsn := filepath.Join(t.TempDir(), "missing", "app.db")
	if _, err := Connect("sqlite3", dsn); err == nil {
		t.Fatal("expected an error for an unreachable database")
	}
}
