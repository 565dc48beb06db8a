package ports

import (
	"context"

	"github.com/zulian026/TaskNest/internal/core/domain"
)

type CategoryRepository interface {
	List(ctx context.Context, userID uint64) ([]domain.Category, error)
	GetByID(ctx context.Context, userID, categoryID uint64) (domain.Category, error)
	GetWithTasks(ctx context.Context, userID, categoryID uint64) (domain.Category, error)
	Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	Update(ctx context.Context, userID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error)
	Delete(ctx context.Context, userID, categoryID uint64) error
}

type CategoryService interface {
	List(ctx context.Context, userID uint64) ([]domain.Category, error)
	Get(ctx context.Context, userID, categoryID uint64) (domain.Category, error)
	Create(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error)
	Update(ctx context.Context, userID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error)
	Delete(ctx context.Context, userID, categoryID uint64) error
}
