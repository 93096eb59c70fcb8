// Package models - Business thuộc domain directory (businesses).
// Lưu doanh nghiệp địa phương: liên hệ, địa chỉ kèm tọa độ, giờ mở cửa, rating tổng hợp từ reviews.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coordinates tọa độ địa lý của doanh nghiệp.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"` // Vĩ độ
	Lng float64 `json:"lng" bson:"lng"` // Kinh độ
}

// Address địa chỉ nhúng trong doanh nghiệp.
type Address struct {
	Street       string      `json:"street" bson:"street"`
	Neighborhood string      `json:"neighborhood" bson:"neighborhood"` // Khu phố / colonia — dùng làm khóa gom pin bản đồ
	City         string      `json:"city" bson:"city"`                 // Tampico, Ciudad Madero, Altamira
	Coordinates  Coordinates `json:"coordinates" bson:"coordinates"`
}

// BusinessHours giờ mở cửa của 1 ngày trong tuần.
type BusinessHours struct {
	Open   string `json:"open,omitempty" bson:"open,omitempty"`   // "09:00"
	Close  string `json:"close,omitempty" bson:"close,omitempty"` // "18:00"
	Closed bool   `json:"closed" bson:"closed"`
}

// WeeklyHours giờ mở cửa cả tuần.
type WeeklyHours struct {
	Monday    BusinessHours `json:"monday" bson:"monday"`
	Tuesday   BusinessHours `json:"tuesday" bson:"tuesday"`
	Wednesday BusinessHours `json:"wednesday" bson:"wednesday"`
	Thursday  BusinessHours `json:"thursday" bson:"thursday"`
	Friday    BusinessHours `json:"friday" bson:"friday"`
	Saturday  BusinessHours `json:"saturday" bson:"saturday"`
	Sunday    BusinessHours `json:"sunday" bson:"sunday"`
}

// Business lưu doanh nghiệp địa phương (businesses).
type Business struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"` // Tên danh mục (denormalized) — match với categories.name
	Subcategory string `json:"subcategory" bson:"subcategory"`

	// Liên hệ & vị trí
	Phone    string  `json:"phone" bson:"phone"`
	Whatsapp string  `json:"whatsapp" bson:"whatsapp"`
	Email    string  `json:"email" bson:"email"`
	Website  string  `json:"website" bson:"website"`
	Address  Address `json:"address" bson:"address"`

	// Thông tin kinh doanh
	Images     []string    `json:"images" bson:"images"`
	PriceRange string      `json:"price_range" bson:"price_range" default:"$$"` // $, $$, $$$, $$$$
	Services   []string    `json:"services" bson:"services"`
	Hours      WeeklyHours `json:"hours" bson:"hours"`

	// Rating tổng hợp — chỉ ghi qua workflow tính lại rating, không sửa tay.
	RatingAverage float64 `json:"rating_average" bson:"rating_average"`
	TotalReviews  int     `json:"total_reviews" bson:"total_reviews"`

	// Trạng thái
	IsActive         bool `json:"is_active" bson:"is_active" default:"true"`
	IsVerified       bool `json:"is_verified" bson:"is_verified"`
	FeaturedPosition *int `json:"featured_position,omitempty" bson:"featured_position,omitempty" index:"single:1"` // nil = không featured

	// Metadata
	CreatedAt int64 `json:"created_at" bson:"created_at"`
	UpdatedAt int64 `json:"updated_at" bson:"updated_at"`
}
