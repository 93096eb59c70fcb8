// Package dto - DTO cho domain directory (category).
package dto

// CategoryCreateInput dữ liệu tạo danh mục mới.
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Slug        string `json:"slug" validate:"required,slug"`
	Icon        string `json:"icon" validate:"required"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}
