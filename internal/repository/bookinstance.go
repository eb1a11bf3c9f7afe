package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
	"gorm.io/gorm"
)

type GormBookInstanceRepository struct {
	db *gorm.DB
}

func NewGormBookInstanceRepository(db *gorm.DB) *GormBookInstanceRepository {
	return &GormBookInstanceRepository{db: db}
}

func (r *GormBookInstanceRepository) List(ctx context.Context) ([]model.BookInstance, error) {
	var instances []model.BookInstance
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Order("created_at ASC").
		Find(&instances).Error; err != nil {

		return nil, translateError(err)
	}
	return instances, nil
}

func (r *GormBookInstanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	var instance model.BookInstance
	if err := r.db.WithContext(ctx).
		Preload("Book").
		First(&instance, "id = ?", id).Error; err != nil {

		return nil, translateError(err)
	}
	return &instance, nil
}

func (r *GormBookInstanceRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	var instances []model.BookInstance
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at ASC").
		Find(&instances).Error; err != nil {

		return nil, translateError(err)
	}
	return instances, nil
}

func (r *GormBookInstanceRepository) Create(ctx context.Context, instance *model.BookInstance) error {
	return translateError(r.db.WithContext(ctx).Omit("Book").Create(instance).Error)
}

func (r *GormBookInstanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &model.BookInstance{}, id)
}

func (r *GormBookInstanceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.BookInstance{}).Count(&n).Error
	return n, translateError(err)
}

func (r *GormBookInstanceRepository) CountByStatus(ctx context.Context, status model.BookInstanceStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.BookInstance{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, translateError(err)
}
