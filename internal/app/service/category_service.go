package service

import (
	"context"

	"github.com/zulian026/TaskNest/internal/core/domain"
	"github.com/zulian026/TaskNest/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) List(ctx context.Context, userID uint64) ([]domain.Category, error) {
	return s.categoryRepository.List(ctx, userID)
}

func (s *CategoryService) Get(ctx context.Context, userID, categoryID uint64) (domain.Category, error) {
	return s.categoryRepository.GetWithTasks(ctx, userID, categoryID)
}

func (s *CategoryService) Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	return s.categoryRepository.Create(ctx, input)
}

func (s *CategoryService) Update(ctx context.Context, userID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	return s.categoryRepository.Update(ctx, userID, categoryID, input)
}

// Delete removes the category; tasks referencing it fall back to no category
// through the schema's ON DELETE SET NULL.
func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uint64) error {
	return s.categoryRepository.Delete(ctx, userID, categoryID)
}

var _ ports.CategoryService = (*CategoryService)(nil)
