//go:build integration
// +build integration

package mongorepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func openTestStore(t *testing.T) *repository.Store {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database("catalog_test_" + uuid.NewString()[:8])
	require.NoError(t, EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return NewStore(client, db)
}

func TestMongoStore_GenreUniquenessAndDependents(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	fantasy := model.Genre{Name: "Fantasy"}
	require.NoError(t, store.Genres.Create(ctx, &fantasy))

	err := store.Genres.Create(ctx, &model.Genre{Name: "Fantasy"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate), "got %v", err)

	author := model.Author{FirstName: "J.R.R.", FamilyName: "Tolkien"}
	require.NoError(t, store.Authors.Create(ctx, &author))

	book := model.Book{
		Title:    "The Hobbit",
		AuthorID: author.ID,
		Summary:  "There and back again",
		ISBN:     "9780261102217",
		Genres:   []model.Genre{{ID: fantasy.ID}},
	}
	require.NoError(t, store.Books.Create(ctx, &book))

	byGenre, err := store.Books.ListByGenre(ctx, fantasy.ID)
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "Tolkien", byGenre[0].Author.FamilyName)

	found, err := store.Books.FindByID(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, found.Genres, 1)
	assert.Equal(t, "Fantasy", found.Genres[0].Name)

	copy1 := model.BookInstance{BookID: book.ID, Imprint: "Allen & Unwin"}
	require.NoError(t, store.BookInstances.Create(ctx, &copy1))

	got, err := store.BookInstances.FindByID(ctx, copy1.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMaintenance, got.Status)
	assert.Equal(t, "The Hobbit", got.Book.Title)

	require.NoError(t, store.BookInstances.Delete(ctx, copy1.ID))
	assert.ErrorIs(t, store.BookInstances.Delete(ctx, copy1.ID), repository.ErrNotFound)

	_, err = store.Genres.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Ping(ctx))
}

func TestMongoStore_CreateRejectsUnknownReferences(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.Books.Create(ctx, &model.Book{
		Title:    "Orphan",
		AuthorID: uuid.New(),
		Summary:  "No author",
		ISBN:     "0000000000",
	})
	assert.True(t, errors.Is(err, repository.ErrInvalidReference), "got %v", err)

	err = store.BookInstances.Create(ctx, &model.BookInstance{BookID: uuid.New(), Imprint: "Nowhere"})
	assert.True(t, errors.Is(err, repository.ErrInvalidReference), "got %v", err)

	n, err := store.Books.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
