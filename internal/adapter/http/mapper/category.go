package mapper

import (
	"time"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	count := category.TasksCount
	return dto.CategoryItem{
		ID:         category.ID,
		Name:       category.Name,
		Color:      category.Color,
		TasksCount: &count,
		CreatedAt:  category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  category.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCategoryDetail includes the category's tasks, rendered with their derived
// fields like any other task payload.
func ToCategoryDetail(category domain.Category, now time.Time) dto.CategoryItem {
	item := ToCategoryItem(category)
	item.Tasks = ToTaskItems(category.Tasks, now)
	return item
}
