package repository

import (
	"context"
	"trivia_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.WithContext(ctx).Order("type asc").Order("id asc").Find(&categories).Error
	return categories, err
}

// FindByID returns at most one category; an unknown id yields an empty slice.
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.WithContext(ctx).Where("id = ?", id).Order("type asc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
