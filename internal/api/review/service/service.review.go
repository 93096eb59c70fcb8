// Package rvvc - Service đánh giá (reviews).
// Tạo review, liệt kê theo doanh nghiệp, và workflow tính lại rating tổng hợp.
package rvvc

import (
	"context"
	"fmt"
	"math"

	basesvc "asteria_local/internal/api/base/service"
	busvc "asteria_local/internal/api/business/service"
	rvdto "asteria_local/internal/api/review/dto"
	rvmodels "asteria_local/internal/api/review/models"
	"asteria_local/internal/common"
	"asteria_local/internal/global"
	"asteria_local/internal/logger"
	"asteria_local/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewService xử lý logic đánh giá. Giữ BusinessService để ghi rating tổng hợp sau khi tính lại.
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[rvmodels.Review]
	businessService *busvc.BusinessService
}

// NewReviewService tạo ReviewService mới.
func NewReviewService() (*ReviewService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Reviews, common.ErrNotFound)
	}
	businessSvc, err := busvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("tạo BusinessService: %w", err)
	}
	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[rvmodels.Review](coll),
		businessService:      businessSvc,
	}, nil
}

// RoundRating làm tròn rating về 1 chữ số thập phân, half-away-from-zero (4.65 → 4.7).
func RoundRating(x float64) float64 {
	return math.Round(x*10) / 10
}

// RatingPipeline dựng pipeline gom avg rating + số review của 1 doanh nghiệp.
func RatingPipeline(businessOID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"business_id": businessOID}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"avg_rating":    bson.M{"$avg": "$rating"},
			"total_reviews": bson.M{"$sum": 1},
		}}},
	}
}

// RatingAggregate là một dòng kết quả $group của RatingPipeline.
type RatingAggregate struct {
	AvgRating    float64 `bson:"avg_rating"`
	TotalReviews int     `bson:"total_reviews"`
}

// SummarizeRatings quy kết quả aggregate về RatingSummary.
// Doanh nghiệp không có review nào → trung bình 0.0 và 0 review.
func SummarizeRatings(rows []RatingAggregate) *rvdto.RatingSummary {
	if len(rows) == 0 {
		return &rvdto.RatingSummary{Average: 0.0, TotalReviews: 0}
	}
	return &rvdto.RatingSummary{
		Average:      RoundRating(rows[0].AvgRating),
		TotalReviews: rows[0].TotalReviews,
	}
}

// RecalculateRating tính lại rating tổng hợp từ toàn bộ review của doanh nghiệp và ghi lên businesses.
// Không có review nào → 0.0 và 0. Idempotent khi review không đổi; 2 lần chạy đồng thời
// cho cùng doanh nghiệp có thể xen kẽ, lần ghi sau thắng.
func (s *ReviewService) RecalculateRating(ctx context.Context, businessId string) (*rvdto.RatingSummary, error) {
	log := logger.GetAppLogger()

	oid := utility.String2ObjectID(businessId)
	if oid.IsZero() {
		return nil, common.ErrNotFound
	}

	cursor, err := s.Collection().Aggregate(ctx, RatingPipeline(oid))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []RatingAggregate
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	summary := SummarizeRatings(results)

	if err := s.businessService.UpdateRating(ctx, businessId, summary.Average, summary.TotalReviews); err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"businessId":   businessId,
		"ratingAvg":    summary.Average,
		"totalReviews": summary.TotalReviews,
	}).Info("Đã cập nhật rating tổng hợp cho doanh nghiệp")
	return summary, nil
}

// Create tạo review mới cho doanh nghiệp đang active rồi tính lại rating tổng hợp.
// Doanh nghiệp không tồn tại hoặc đã ẩn trả ErrNotFound.
func (s *ReviewService) Create(ctx context.Context, input *rvdto.ReviewCreateInput) (rvmodels.Review, error) {
	var zero rvmodels.Review

	oid := utility.String2ObjectID(input.BusinessID)
	if oid.IsZero() {
		return zero, common.ErrNotFound
	}
	exists, err := s.businessService.ActiveExists(ctx, oid)
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrNotFound
	}

	review := rvmodels.Review{
		BusinessID: oid,
		UserName:   input.UserName,
		UserEmail:  input.UserEmail,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Images:     input.Images,
	}
	if review.Images == nil {
		review.Images = []string{}
	}

	created, err := s.InsertOne(ctx, review)
	if err != nil {
		return zero, err
	}

	// Review đã ghi xong; tính lại rating là bước riêng, không auto-retry khi lỗi.
	if _, err := s.RecalculateRating(ctx, input.BusinessID); err != nil {
		return zero, err
	}
	return created, nil
}

// ListByBusiness trả về review của 1 doanh nghiệp, mới nhất trước.
// Id sai định dạng, không tồn tại, hoặc trỏ tới doanh nghiệp đã ẩn đều coi như không tìm thấy.
func (s *ReviewService) ListByBusiness(ctx context.Context, businessId string, limit int) ([]rvmodels.Review, error) {
	oid := utility.String2ObjectID(businessId)
	if oid.IsZero() {
		return nil, common.ErrNotFound
	}
	exists, err := s.businessService.ActiveExists(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return s.Find(ctx, bson.M{"business_id": oid}, opts)
}
