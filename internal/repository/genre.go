package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"gorm.io/gorm"
)

type GormGenreRepository struct {
	db *gorm.DB
}

func NewGormGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

func (r *GormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&genres).Error; err != nil {

		return nil, translateError(err)
	}
	return genres, nil
}

func (r *GormGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &genre, nil
}

func (r *GormGenreRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).First(&genre, "name = ?", name).Error; err != nil {
		return nil, translateError(err)
	}
	return &genre, nil
}

func (r *GormGenreRepository) Create(ctx context.Context, genre *model.Genre) error {
	return translateError(r.db.WithContext(ctx).Create(genre).Error)
}

func (r *GormGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.Genre{}, id)
}

func (r *GormGenreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Genre{}).Count(&n).Error
	return n, translateError(err)
}
