// Package dto - DTO cho domain directory (business).
package dto

import (
	"asteria_local/internal/api/business/models"
)

// BusinessCreateInput dữ liệu tạo doanh nghiệp mới.
type BusinessCreateInput struct {
	Name        string             `json:"name" validate:"required,no_xss"`
	Description string             `json:"description,omitempty" validate:"omitempty,no_xss"`
	Category    string             `json:"category" validate:"required"`
	Subcategory string             `json:"subcategory,omitempty"`
	Phone       string             `json:"phone" validate:"required"`
	Whatsapp    string             `json:"whatsapp,omitempty"`
	Email       string             `json:"email,omitempty" validate:"omitempty,email"`
	Website     string             `json:"website,omitempty" validate:"omitempty,url"`
	Address     models.Address     `json:"address" validate:"required"`
	Images      []string           `json:"images,omitempty"`
	PriceRange  string             `json:"price_range,omitempty" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Services    []string           `json:"services,omitempty"`
	Hours       models.WeeklyHours `json:"hours,omitempty"`
}

// BusinessUpdateInput dữ liệu cập nhật doanh nghiệp — chỉ field khác nil mới được ghi đè.
type BusinessUpdateInput struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description *string             `json:"description,omitempty" validate:"omitempty,no_xss"`
	Category    *string             `json:"category,omitempty"`
	Subcategory *string             `json:"subcategory,omitempty"`
	Phone       *string             `json:"phone,omitempty"`
	Whatsapp    *string             `json:"whatsapp,omitempty"`
	Email       *string             `json:"email,omitempty" validate:"omitempty,email"`
	Website     *string             `json:"website,omitempty" validate:"omitempty,url"`
	Address     *models.Address     `json:"address,omitempty"`
	Images      *[]string           `json:"images,omitempty"`
	PriceRange  *string             `json:"price_range,omitempty" validate:"omitempty,oneof=$ $$ $$$ $$$$"`
	Services    *[]string           `json:"services,omitempty"`
	Hours       *models.WeeklyHours `json:"hours,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
}

// BusinessListQuery tham số lọc danh sách doanh nghiệp.
type BusinessListQuery struct {
	Category string // Lọc theo tên danh mục (rỗng = bỏ qua)
	City     string // Lọc theo thành phố (rỗng = bỏ qua)
	Search   string // Tìm substring không phân biệt hoa thường trong name/description
	Limit    int
	Skip     int
}

// MapPin 1 cụm pin trên bản đồ — gom các doanh nghiệp cùng (category, neighborhood, tọa độ).
type MapPin struct {
	Category     string  `json:"category" bson:"category"`
	Neighborhood string  `json:"neighborhood" bson:"neighborhood"`
	Lat          float64 `json:"lat" bson:"lat"`
	Lng          float64 `json:"lng" bson:"lng"`
	Count        int     `json:"count" bson:"count"`
}
