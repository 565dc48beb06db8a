package dto

type CategoryItem struct {
	ID         uint64     `json:"id"`
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	TasksCount *int       `json:"tasks_count,omitempty"`
	Tasks      []TaskItem `json:"tasks,omitempty"`
	CreatedAt  string     `json:"created_at,omitempty"`
	UpdatedAt  string     `json:"updated_at,omitempty"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Color string `json:"color" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Color *string `json:"color" binding:"omitempty"`
}
