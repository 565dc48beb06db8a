package domain

import (
	"regexp"
	"time"
)

// hexColorPattern matches the #RRGGBB colors categories are tagged with.
var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func ValidHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

type Category struct {
	ID        uint64
	UserID    uint64
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// TasksCount is populated by listing queries, Tasks by single fetches.
	TasksCount int
	Tasks      []Task
}

type CreateCategoryInput struct {
	UserID uint64
	Name   string
	Color  string
}

type UpdateCategoryInput struct {
	Name  *string
	Color *string
}
