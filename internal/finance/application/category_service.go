package application

import (
	"context"
	"errors"

	"github.com/sebuszqo/LanaApp/internal/finance/domain"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *domain.Category) (int64, error) {
	if err := category.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, category)
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// GetCategories lists categories; an empty categoryType lists all of them.
func (s *CategoryService) GetCategories(ctx context.Context, categoryType string) ([]domain.Category, error) {
	t := domain.CategoryType(categoryType)
	if t != "" && !t.Valid() {
		return nil, domain.ErrInvalidCategoryType
	}
	return s.repo.FindAll(ctx, t)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, category)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// DoesCategoryExist reports whether id resolves to a category.
func (s *CategoryService) DoesCategoryExist(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return false, nil
	}
	return false, err
}
