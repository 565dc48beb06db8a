package domain

import "time"

// PageSize is the fixed page length for task listings.
const PageSize = 10

// TaskFilter is the explicit filter specification consumed by the task query
// engine. Empty fields are skipped; set fields combine with AND semantics.
// Search matches title OR description, case-insensitively.
type TaskFilter struct {
	Status        *TaskStatus
	ExcludeStatus *TaskStatus
	Priority      *TaskPriority
	CategoryID    *uint64
	DueOn         *time.Time
	DueBefore     *time.Time
	DueFrom       *time.Time
	DueTo         *time.Time
	Search        string
}

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByDueDate   SortField = "due_date"
	SortByPriority  SortField = "priority"
	SortByStatus    SortField = "status"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type TaskSort struct {
	Field SortField
	Order SortOrder
}

// DefaultTaskSort is newest-first creation order.
var DefaultTaskSort = TaskSort{Field: SortByCreatedAt, Order: SortDesc}

// ParseTaskSort maps raw query values onto a sort specification. An
// unrecognized field falls back to the default ordering instead of erroring,
// so malformed clients still get a sane listing.
func ParseTaskSort(field, order string) TaskSort {
	switch SortField(field) {
	case SortByCreatedAt, SortByDueDate, SortByPriority, SortByStatus:
	default:
		return DefaultTaskSort
	}

	sort := TaskSort{Field: SortField(field), Order: SortDesc}
	if order == string(SortAsc) {
		sort.Order = SortAsc
	}
	return sort
}

type PageInfo struct {
	CurrentPage int
	PerPage     int
	Total       int
	LastPage    int
}

// NewPageInfo derives pagination metadata for a page of the given total.
func NewPageInfo(page, total int) PageInfo {
	lastPage := (total + PageSize - 1) / PageSize
	if lastPage < 1 {
		lastPage = 1
	}
	return PageInfo{
		CurrentPage: page,
		PerPage:     PageSize,
		Total:       total,
		LastPage:    lastPage,
	}
}

// TaskPage is one page of tasks with its position metadata and the summary
// counters computed over the whole filtered set.
type TaskPage struct {
	Tasks   []Task
	Info    PageInfo
	Summary TaskSummary
}

// Named filter vocabulary. The set is closed: anything else resolves to
// ErrUnknownFilter without touching the store.
const (
	FilterPending      = "pending"
	FilterInProgress   = "in_progress"
	FilterCompleted    = "completed"
	FilterOverdue      = "overdue"
	FilterToday        = "today"
	FilterThisWeek     = "this_week"
	FilterHighPriority = "high_priority"
)

// ResolveNamedFilter translates a named filter into its predicate. Temporal
// filters are anchored on now: "overdue" means due strictly before today and
// not completed, "today" means due exactly today, and "this_week" spans the
// Monday..Sunday week containing today, inclusive.
func ResolveNamedFilter(name string, now time.Time) (TaskFilter, error) {
	switch name {
	case FilterPending:
		status := TaskStatusPending
		return TaskFilter{Status: &status}, nil
	case FilterInProgress:
		status := TaskStatusInProgress
		return TaskFilter{Status: &status}, nil
	case FilterCompleted:
		status := TaskStatusCompleted
		return TaskFilter{Status: &status}, nil
	case FilterOverdue:
		today := dateOf(now)
		completed := TaskStatusCompleted
		return TaskFilter{DueBefore: &today, ExcludeStatus: &completed}, nil
	case FilterToday:
		today := dateOf(now)
		return TaskFilter{DueOn: &today}, nil
	case FilterThisWeek:
		start, end := WeekBounds(now)
		return TaskFilter{DueFrom: &start, DueTo: &end}, nil
	case FilterHighPriority:
		priority := TaskPriorityHigh
		return TaskFilter{Priority: &priority}, nil
	}
	return TaskFilter{}, ErrUnknownFilter
}
