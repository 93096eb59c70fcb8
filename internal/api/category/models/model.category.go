// Package models - Category thuộc domain directory (categories).
// Danh mục ngành nghề: slug duy nhất dùng làm khóa URL, business_count là giá trị dẫn xuất.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category lưu danh mục ngành nghề (categories).
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name"`
	Slug        string `json:"slug" bson:"slug" index:"unique"` // Khóa URL-safe, duy nhất
	Icon        string `json:"icon" bson:"icon"`                // Tên icon Lucide
	Description string `json:"description" bson:"description"`

	// Số doanh nghiệp active có category = name — bản cache, nguồn thật là aggregation live.
	// Chỉ ghi qua RecomputeCounts.
	BusinessCount int `json:"business_count" bson:"business_count"`

	IsActive bool `json:"is_active" bson:"is_active" index:"single:1" default:"true"`

	CreatedAt int64 `json:"created_at" bson:"created_at"`
	UpdatedAt int64 `json:"updated_at" bson:"updated_at"`
}
