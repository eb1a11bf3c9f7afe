package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate key")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

type GenreRepository interface {
	List(ctx context.Context) ([]model.Genre, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	FindByName(ctx context.Context, name string) (*model.Genre, error)
	Create(ctx context.Context, genre *model.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type AuthorRepository interface {
	List(ctx context.Context) ([]model.Author, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	Create(ctx context.Context, author *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// BookRepository populates Author on every read and Genres on FindByID.
type BookRepository interface {
	List(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// BookInstanceRepository populates Book on every read.
type BookInstanceRepository interface {
	List(ctx context.Context) ([]model.BookInstance, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error)
	Create(ctx context.Context, instance *model.BookInstance) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.BookInstanceStatus) (int64, error)
}

// Conn is the lifecycle of the connection behind a Store.
type Conn interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Store bundles the repositories sharing one connection. It is opened once at
// startup and closed at shutdown.
type Store struct {
	Genres        GenreRepository
	Authors       AuthorRepository
	Books         BookRepository
	BookInstances BookInstanceRepository
	Conn          Conn
}

func (s *Store) Ping(ctx context.Context) error {
	if s.Conn == nil {
		return nil
	}
	return s.Conn.Ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.Conn == nil {
		return nil
	}
	return s.Conn.Close(ctx)
}
