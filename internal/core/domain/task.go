package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities by severity: low < medium < high. Lexical ordering
// of the raw values would put high before low, which is wrong for sorting.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityLow:
		return 0
	case TaskPriorityMedium:
		return 1
	case TaskPriorityHigh:
		return 2
	}
	return -1
}

type Task struct {
	ID          uint64
	UserID      uint64
	CategoryID  *uint64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    *Category
}

// IsOverdue reports whether the task's due date has passed. The comparison is
// at calendar-date granularity; a task without a due date or a completed task
// is never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == TaskStatusCompleted {
		return false
	}
	return dateOf(*t.DueDate).Before(dateOf(now))
}

// DaysUntilDue returns the signed day difference between the due date and
// today: negative when past due, zero when due today. Nil when the task has
// no due date or is completed.
func (t Task) DaysUntilDue(now time.Time) *int {
	if t.DueDate == nil || t.Status == TaskStatusCompleted {
		return nil
	}
	days := int(dateOf(*t.DueDate).Sub(dateOf(now)).Hours() / 24)
	return &days
}

// dateOf truncates a timestamp to its calendar date, normalized to UTC
// midnight so day differences are exact multiples of 24h.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now, used wherever due dates are
// compared at date granularity.
func Today(now time.Time) time.Time {
	return dateOf(now)
}

// WeekBounds returns the Monday and Sunday of the week containing now
// (ISO-8601 week, Monday start).
func WeekBounds(now time.Time) (time.Time, time.Time) {
	day := dateOf(now)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

type CreateTaskInput struct {
	UserID      uint64
	CategoryID  *uint64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	// CompletedAt is filled by the task service when Status is completed.
	CompletedAt *time.Time
}

// UpdateTaskInput carries the allow-listed mutable fields of a task. The Set
// flags distinguish "clear this nullable field" from "leave it alone".
// CompletedAt is managed by the task service, never by callers.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	DueDate        *time.Time
	DueDateSet     bool
	CategoryID     *uint64
	CategoryIDSet  bool
	CompletedAt    *time.Time
	CompletedAtSet bool
}

type TaskSummary struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Overdue    int
}
