// Package dto - DTO cho domain directory (review).
package dto

// ReviewCreateInput dữ liệu tạo đánh giá mới.
// business_id không check qua validator — id sai hay vắng mặt đều phải ra not-found ở service,
// không phải lỗi validate.
type ReviewCreateInput struct {
	BusinessID string   `json:"business_id" validate:"required"`
	UserName   string   `json:"user_name" validate:"required,no_xss"`
	UserEmail  string   `json:"user_email" validate:"required,email"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
	Comment    string   `json:"comment,omitempty" validate:"omitempty,no_xss"`
	Images     []string `json:"images,omitempty"`
}

// RatingSummary kết quả tính lại rating của 1 doanh nghiệp.
type RatingSummary struct {
	Average      float64 `json:"rating_average"`
	TotalReviews int     `json:"total_reviews"`
}
