package repository

import (
	"context"
	"testing"

	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/testutil"
)

func TestGormStore_PingAndClose(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := NewGormStore(db)
	ctx := context.Background()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if err := store.Close(ctx); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := store.Ping(ctx); err == nil {
		t.Fatalf("expected Ping to fail after Close")
	}
}

func TestStore_NilConn(t *testing.T) {
	var s Store
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
