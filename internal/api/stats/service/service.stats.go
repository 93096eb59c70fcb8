// Package statsvc - Service thống kê nền tảng.
package statsvc

import (
	"context"
	"fmt"

	busvc "asteria_local/internal/api/business/service"
	rvvc "asteria_local/internal/api/review/service"
	statsdto "asteria_local/internal/api/stats/dto"
	"asteria_local/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatsService tính snapshot thống kê từ businesses + reviews.
type StatsService struct {
	businessService *busvc.BusinessService
	reviewService   *rvvc.ReviewService
}

// NewStatsService tạo StatsService mới.
func NewStatsService() (*StatsService, error) {
	businessSvc, err := busvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("tạo BusinessService: %w", err)
	}
	reviewSvc, err := rvvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewService: %w", err)
	}
	return &StatsService{businessService: businessSvc, reviewService: reviewSvc}, nil
}

// AverageRatingPipeline dựng pipeline tính trung bình rating_average của doanh nghiệp active
// có ít nhất 1 review — doanh nghiệp 0 review bị loại để không kéo trung bình về 0.
func AverageRatingPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true, "total_reviews": bson.M{"$gt": 0}}}},
		{{Key: "$group", Value: bson.M{
			"_id":                 nil,
			"avg_platform_rating": bson.M{"$avg": "$rating_average"},
		}}},
	}
}

// PlatformRatingRow là một dòng kết quả $group của AverageRatingPipeline.
type PlatformRatingRow struct {
	AvgPlatformRating float64 `bson:"avg_platform_rating"`
}

// PlatformAverage quy kết quả aggregate về rating trung bình toàn nền tảng.
// Không có doanh nghiệp nào có review → 0.0.
func PlatformAverage(rows []PlatformRatingRow) float64 {
	if len(rows) == 0 {
		return 0.0
	}
	return rvvc.RoundRating(rows[0].AvgPlatformRating)
}

// PlatformStats trả về snapshot thống kê tại thời điểm gọi.
func (s *StatsService) PlatformStats(ctx context.Context) (*statsdto.PlatformStats, error) {
	totalBusinesses, err := s.businessService.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}

	// Review không soft-delete được nên đếm tất cả, không lọc.
	totalReviews, err := s.reviewService.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	rawCities, err := s.businessService.Distinct(ctx, "address.city", bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	cities := make([]string, 0, len(rawCities))
	for _, v := range rawCities {
		if city, ok := v.(string); ok {
			cities = append(cities, city)
		}
	}

	cursor, err := s.businessService.Collection().Aggregate(ctx, AverageRatingPipeline())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []PlatformRatingRow
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return &statsdto.PlatformStats{
		TotalBusinesses: totalBusinesses,
		TotalReviews:    totalReviews,
		TotalCities:     len(cities),
		AverageRating:   PlatformAverage(results),
		Cities:          cities,
	}, nil
}
