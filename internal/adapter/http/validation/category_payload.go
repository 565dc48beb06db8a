package validation

import (
	"strings"

	"github.com/zulian026/TaskNest/internal/adapter/http/dto"
	"github.com/zulian026/TaskNest/internal/core/domain"
)

// CreateCategoryFields validates a create payload beyond binding and returns
// per-field messages; an empty map means the payload is good.
func CreateCategoryFields(req dto.CreateCategoryRequest) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Category name is required"
	}
	if !domain.ValidHexColor(req.Color) {
		fields["color"] = "Color must be a valid hex color code (e.g., #FF0000)"
	}

	return fields
}

// UpdateCategoryFields validates an update payload; fields are optional but,
// when present, must be valid.
func UpdateCategoryFields(req dto.UpdateCategoryRequest) map[string]string {
	fields := make(map[string]string)

	if req.Name == nil && req.Color == nil {
		fields["name"] = "At least one of name or color must be provided"
		return fields
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		fields["name"] = "Category name is required"
	}
	if req.Color != nil && !domain.ValidHexColor(*req.Color) {
		fields["color"] = "Color must be a valid hex color code (e.g., #FF0000)"
	}

	return fields
}

func BuildUpdateCategoryInput(req dto.UpdateCategoryRequest) domain.UpdateCategoryInput {
	input := domain.UpdateCategoryInput{Color: req.Color}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		input.Name = &trimmed
	}
	return input
}
