package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulian026/TaskNest/internal/core/domain"
)

func statusPtr(s domain.TaskStatus) *domain.TaskStatus       { return &s }
func priorityPtr(p domain.TaskPriority) *domain.TaskPriority { return &p }
func idPtr(id uint64) *uint64                                { return &id }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestBuildTaskPredicates(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.TaskFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "owner scope only",
			filter:    domain.TaskFilter{},
			wantWhere: "t.user_id = ?",
			wantArgs:  []any{uint64(7)},
		},
		{
			name:      "status",
			filter:    domain.TaskFilter{Status: statusPtr(domain.TaskStatusPending)},
			wantWhere: "t.user_id = ? AND t.status = ?",
			wantArgs:  []any{uint64(7), "pending"},
		},
		{
			name:      "exclude status",
			filter:    domain.TaskFilter{ExcludeStatus: statusPtr(domain.TaskStatusCompleted)},
			wantWhere: "t.user_id = ? AND t.status <> ?",
			wantArgs:  []any{uint64(7), "completed"},
		},
		{
			name:      "priority",
			filter:    domain.TaskFilter{Priority: priorityPtr(domain.TaskPriorityHigh)},
			wantWhere: "t.user_id = ? AND t.priority = ?",
			wantArgs:  []any{uint64(7), "high"},
		},
		{
			name:      "category",
			filter:    domain.TaskFilter{CategoryID: idPtr(12)},
			wantWhere: "t.user_id = ? AND t.category_id = ?",
			wantArgs:  []any{uint64(7), uint64(12)},
		},
		{
			name:      "due on a single day",
			filter:    domain.TaskFilter{DueOn: datePtr(2026, time.March, 11)},
			wantWhere: "t.user_id = ? AND t.due_date = ?",
			wantArgs:  []any{uint64(7), "2026-03-11"},
		},
		{
			name:      "due strictly before",
			filter:    domain.TaskFilter{DueBefore: datePtr(2026, time.March, 11)},
			wantWhere: "t.user_id = ? AND t.due_date < ?",
			wantArgs:  []any{uint64(7), "2026-03-11"},
		},
		{
			name: "due date range",
			filter: domain.TaskFilter{
				DueFrom: datePtr(2026, time.March, 9),
				DueTo:   datePtr(2026, time.March, 15),
			},
			wantWhere: "t.user_id = ? AND t.due_date >= ? AND t.due_date <= ?",
			wantArgs:  []any{uint64(7), "2026-03-09", "2026-03-15"},
		},
		{
			name:      "search matches title or description",
			filter:    domain.TaskFilter{Search: "report"},
			wantWhere: "t.user_id = ? AND (t.title LIKE ? OR t.description LIKE ?)",
			wantArgs:  []any{uint64(7), "%report%", "%report%"},
		},
		{
			name: "overdue shortcut excludes completed",
			filter: domain.TaskFilter{
				DueBefore:     datePtr(2026, time.March, 11),
				ExcludeStatus: statusPtr(domain.TaskStatusCompleted),
			},
			wantWhere: "t.user_id = ? AND t.status <> ? AND t.due_date < ?",
			wantArgs:  []any{uint64(7), "completed", "2026-03-11"},
		},
		{
			name: "combined status priority and search",
			filter: domain.TaskFilter{
				Status:   statusPtr(domain.TaskStatusInProgress),
				Priority: priorityPtr(domain.TaskPriorityLow),
				Search:   "plan",
			},
			wantWhere: "t.user_id = ? AND t.status = ? AND t.priority = ? AND (t.title LIKE ? OR t.description LIKE ?)",
			wantArgs:  []any{uint64(7), "in_progress", "low", "%plan%", "%plan%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildTaskPredicates(7, tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildTaskPredicates_NamedFilterTranslation(t *testing.T) {
	// The resolver output for each named filter must land on the intended
	// SQL shape, not just the intended TaskFilter value.
	now := time.Date(2026, time.March, 11, 14, 30, 0, 0, time.UTC)

	for _, tt := range []struct {
		name      string
		wantWhere string
	}{
		{"overdue", "t.user_id = ? AND t.status <> ? AND t.due_date < ?"},
		{"today", "t.user_id = ? AND t.due_date = ?"},
		{"this_week", "t.user_id = ? AND t.due_date >= ? AND t.due_date <= ?"},
		{"high_priority", "t.user_id = ? AND t.priority = ?"},
		{"completed", "t.user_id = ? AND t.status = ?"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := domain.ResolveNamedFilter(tt.name, now)
			require.NoError(t, err)

			where, _ := buildTaskPredicates(7, filter)
			assert.Equal(t, tt.wantWhere, where)
		})
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name string
		sort domain.TaskSort
		want string
	}{
		{
			name: "default created_at desc",
			sort: domain.DefaultTaskSort,
			want: "t.created_at DESC, t.id ASC",
		},
		{
			name: "due date asc",
			sort: domain.TaskSort{Field: domain.SortByDueDate, Order: domain.SortAsc},
			want: "t.due_date ASC, t.id ASC",
		},
		{
			name: "priority asc by severity",
			sort: domain.TaskSort{Field: domain.SortByPriority, Order: domain.SortAsc},
			want: "FIELD(t.priority, 'low', 'medium', 'high') ASC, t.id ASC",
		},
		{
			name: "priority desc by severity",
			sort: domain.TaskSort{Field: domain.SortByPriority, Order: domain.SortDesc},
			want: "FIELD(t.priority, 'low', 'medium', 'high') DESC, t.id ASC",
		},
		{
			name: "status desc",
			sort: domain.TaskSort{Field: domain.SortByStatus, Order: domain.SortDesc},
			want: "t.status DESC, t.id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sort))
		})
	}
}
