// Package models - Review thuộc domain directory (reviews).
// Đánh giá của khách cho doanh nghiệp; không soft-delete — mọi review đều tính vào thống kê.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review lưu đánh giá của khách (reviews).
type Review struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	BusinessID primitive.ObjectID `json:"business_id" bson:"business_id" index:"single:1"`

	UserName  string `json:"user_name" bson:"user_name"`
	UserEmail string `json:"-" bson:"user_email"` // Không trả về qua API
	Rating    int    `json:"rating" bson:"rating"` // 1-5 sao
	Comment   string `json:"comment" bson:"comment"`

	Images     []string `json:"images" bson:"images"`
	IsVerified bool     `json:"is_verified" bson:"is_verified"`

	CreatedAt int64 `json:"created_at" bson:"created_at" index:"single:-1"`
	UpdatedAt int64 `json:"-" bson:"updated_at"`
}
