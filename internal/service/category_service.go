package service

import (
	"context"
	"trivia_backend/internal/model"
	"trivia_backend/internal/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

// CategoryMap builds the id -> name mapping ordered by name. With an id it is
// restricted to that category, and is empty when the id is unknown.
func (s *CategoryService) CategoryMap(ctx context.Context, id *uint) (model.CategoryMap, error) {
	var (
		categories []model.Category
		err        error
	)
	if id != nil {
		categories, err = s.Repo.FindByID(ctx, *id)
	} else {
		categories, err = s.Repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return model.NewCategoryMap(categories), nil
}

func (s *CategoryService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.Repo.Exists(ctx, id)
}
