package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"gorm.io/gorm"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create stores the book and links it to the genres listed by id. Genre rows
// themselves are never written here.
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return translateError(r.db.WithContext(ctx).
		Omit("Author", "Genres.*").
		Create(book).Error)
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("genres.name ASC")
		}).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, translateError(err)
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translateError(err)
	}
	return books, nil
}

func (r *GormBookRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("books.title ASC").
		Find(&books).Error; err != nil {

		return nil, translateError(err)
	}
	return books, nil
}

func (r *GormBookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translateError(err)
	}
	return books, nil
}

// Delete removes the book together with its genre links.
func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Book{ID: id}).Association("Genres").Clear(); err != nil {
			return translateError(err)
		}
		return deleteByID(tx, &model.Book{}, id)
	})
}

func (r *GormBookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&n).Error
	return n, translateError(err)
}
