// Package dto - DTO cho domain stats.
package dto

// PlatformStats snapshot thống kê nền tảng cho trang chủ — luôn tính mới, không cache.
type PlatformStats struct {
	TotalBusinesses int64    `json:"total_businesses"` // Doanh nghiệp active
	TotalReviews    int64    `json:"total_reviews"`    // Tất cả review, không lọc active
	TotalCities     int      `json:"total_cities"`
	AverageRating   float64  `json:"average_rating"` // Trung bình rating_average của doanh nghiệp có review, 1 chữ số thập phân
	Cities          []string `json:"cities"`
}
