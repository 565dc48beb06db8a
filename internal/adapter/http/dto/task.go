package dto

type TaskItem struct {
	ID           uint64        `json:"id"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	Status       string        `json:"status"`
	Priority     string        `json:"priority"`
	DueDate      *string       `json:"due_date,omitempty"`
	CompletedAt  *string       `json:"completed_at,omitempty"`
	IsOverdue    bool          `json:"is_overdue"`
	DaysUntilDue *int          `json:"days_until_due,omitempty"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
	Category     *CategoryItem `json:"category,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
