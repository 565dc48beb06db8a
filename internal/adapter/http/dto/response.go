package dto

// Response is the success envelope every endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func WithMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Message(message string) Response {
	return Response{Success: true, Message: message}
}

// ListMeta carries pagination position plus summary counters for the whole
// filtered set.
type ListMeta struct {
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	Total       int         `json:"total"`
	LastPage    int         `json:"last_page"`
	Summary     TaskSummary `json:"summary"`
}

type TaskSummary struct {
	TotalTasks      int `json:"total_tasks"`
	PendingTasks    int `json:"pending_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	OverdueTasks    int `json:"overdue_tasks"`
}
