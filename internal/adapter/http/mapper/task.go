package mapper

import (
	"time"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

// ToTaskItem renders a task with its derived temporal fields. is_overdue and
// days_until_due are computed here against now and never stored.
func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:           task.ID,
		Title:        task.Title,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		IsOverdue:    task.IsOverdue(now),
		DaysUntilDue: task.DaysUntilDue(now),
		CreatedAt:    task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dateLayout)
		item.DueDate = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if task.Category != nil {
		item.Category = &dto.CategoryItem{
			ID:    task.Category.ID,
			Name:  task.Category.Name,
			Color: task.Category.Color,
		}
	}

	return item
}

func ToListMeta(page domain.TaskPage) dto.ListMeta {
	return dto.ListMeta{
		CurrentPage: page.Info.CurrentPage,
		PerPage:     page.Info.PerPage,
		Total:       page.Info.Total,
		LastPage:    page.Info.LastPage,
		Summary: dto.TaskSummary{
			TotalTasks:      page.Summary.Total,
			PendingTasks:    page.Summary.Pending,
			InProgressTasks: page.Summary.InProgress,
			CompletedTasks:  page.Summary.Completed,
			OverdueTasks:    page.Summary.Overdue,
		},
	}
}
