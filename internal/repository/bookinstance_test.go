package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/testutil"
)

func TestGormBookInstanceRepository_CreateAppliesDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookInstanceRepository(db)
	ctx := context.Background()

	author := testutil.SeedAuthor(t, db, "Isaac", "Asimov")
	book := testutil.SeedBook(t, db, author, "Foundation")

	before := time.Now()
	instance := model.BookInstance{BookID: book.ID, Imprint: "Gnome Press 1951"}
	if err := repo.Create(ctx, &instance); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := repo.FindByID(ctx, instance.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Status != model.StatusMaintenance {
		t.Fatalf("expected default status, got %q", found.Status)
	}
	if found.DueBack.Before(before.Add(-time.Second)) {
		t.Fatalf("expected due back defaulted to now, got %v", found.DueBack)
	}
	if found.Book.Title != "Foundation" {
		t.Fatalf("expected book to be populated, got %q", found.Book.Title)
	}
}

func TestGormBookInstanceRepository_ListAndCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookInstanceRepository(db)
	ctx := context.Background()

	author := testutil.SeedAuthor(t, db, "Isaac", "Asimov")
	foundation := testutil.SeedBook(t, db, author, "Foundation")
	robots := testutil.SeedBook(t, db, author, "I, Robot")

	testutil.SeedBookInstance(t, db, foundation, "Gnome Press", model.StatusAvailable)
	testutil.SeedBookInstance(t, db, foundation, "Bantam", model.StatusLoaned)
	testutil.SeedBookInstance(t, db, robots, "Doubleday", model.StatusAvailable)

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(all))
	}
	for _, bi := range all {
		if bi.Book.Title == "" {
			t.Fatalf("expected book populated for instance %s", bi.ID)
		}
	}

	forFoundation, err := repo.ListByBook(ctx, foundation.ID)
	if err != nil {
		t.Fatalf("ListByBook returned error: %v", err)
	}
	if len(forFoundation) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(forFoundation))
	}

	available, err := repo.CountByStatus(ctx, model.StatusAvailable)
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	if available != 2 {
		t.Fatalf("expected 2 available, got %d", available)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 total, got %d", total)
	}
}

func TestGormBookInstanceRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookInstanceRepository(db)
	ctx := context.Background()

	author := testutil.SeedAuthor(t, db, "Isaac", "Asimov")
	book := testutil.SeedBook(t, db, author, "Foundation")
	instance := testutil.SeedBookInstance(t, db, book, "Gnome Press", model.StatusAvailable)

	if err := repo.Delete(ctx, instance.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormBookInstanceRepository_CreateRejectsUnknownBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookInstanceRepository(db)

	instance := model.BookInstance{BookID: uuid.New(), Imprint: "Nowhere Press"}

	err := repo.Create(context.Background(), &instance)
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
	if n := testutil.Count(t, db, &model.BookInstance{}); n != 0 {
		t.Fatalf("expected no copy stored, got %d", n)
	}
}
