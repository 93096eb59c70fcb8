// Package initsvc chứa InitService dùng để khởi tạo dữ liệu mặc định cho directory
// (danh mục, doanh nghiệp mẫu, review mẫu). Tách package riêng để tránh import cycle.
package initsvc

import (
	"context"
	"fmt"

	busvc "asteria_local/internal/api/business/service"
	catvc "asteria_local/internal/api/category/service"
	rvvc "asteria_local/internal/api/review/service"
	"asteria_local/internal/logger"
	"asteria_local/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// InitService khởi tạo dữ liệu mặc định cho hệ thống directory.
type InitService struct {
	businessService *busvc.BusinessService
	categoryService *catvc.CategoryService
	reviewService   *rvvc.ReviewService
}

// NewInitService tạo InitService mới.
func NewInitService() (*InitService, error) {
	businessSvc, err := busvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("tạo BusinessService: %w", err)
	}
	categorySvc, err := catvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	reviewSvc, err := rvvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewService: %w", err)
	}
	return &InitService{
		businessService: businessSvc,
		categoryService: categorySvc,
		reviewService:   reviewSvc,
	}, nil
}

// InitDirectoryData seed danh mục + doanh nghiệp + review mẫu khi database còn trống,
// rồi recompute business_count. Idempotent — database đã có dữ liệu thì bỏ qua seed.
func (s *InitService) InitDirectoryData(ctx context.Context) error {
	log := logger.GetAppLogger()

	categoryCount, err := s.categoryService.CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("đếm categories: %w", err)
	}

	// Danh mục seed theo khóa slug — upsert để chạy lại bao nhiêu lần cũng không tạo bản ghi trùng.
	for _, cat := range SeedCategories() {
		if _, err := s.categoryService.Upsert(ctx, bson.M{"slug": cat.Slug}, bson.M{
			"name":        cat.Name,
			"slug":        cat.Slug,
			"icon":        cat.Icon,
			"description": cat.Description,
			"is_active":   cat.IsActive,
		}); err != nil {
			return fmt.Errorf("seed danh mục %s: %w", cat.Slug, err)
		}
	}
	log.Infof("Đã upsert %d danh mục mặc định", len(SeedCategories()))

	businessCount, err := s.businessService.CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("đếm businesses: %w", err)
	}
	if businessCount == 0 {
		businesses, err := s.businessService.InsertMany(ctx, SeedBusinesses())
		if err != nil {
			return fmt.Errorf("seed businesses: %w", err)
		}
		log.Infof("Đã seed %d doanh nghiệp mẫu", len(businesses))

		// Review mẫu gắn vào Restaurante El Huasteco — tra theo tên vì InsertMany
		// không đảm bảo thứ tự khi đọc lại.
		target, err := s.businessService.FindOne(ctx, bson.M{"name": "Restaurante El Huasteco"}, nil)
		if err != nil {
			return fmt.Errorf("tìm doanh nghiệp nhận review mẫu: %w", err)
		}
		reviews := SeedReviews()
		for i := range reviews {
			reviews[i].BusinessID = target.ID
		}
		if _, err := s.reviewService.InsertMany(ctx, reviews); err != nil {
			return fmt.Errorf("seed reviews: %w", err)
		}
		log.WithField("businessId", utility.ObjectID2String(target.ID)).
			Infof("Đã seed %d review mẫu", len(reviews))
	}

	// Ghi bản cache business_count cho mọi danh mục sau khi seed.
	updated, err := s.categoryService.RecomputeCounts(ctx)
	if err != nil {
		return fmt.Errorf("recompute business_count: %w", err)
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"categoriesBefore":   categoryCount,
		"categoriesUpserted": len(SeedCategories()),
		"seededBusinesses":   businessCount == 0,
		"countsUpdated":      updated,
	}).Info("Khởi tạo dữ liệu directory hoàn tất")
	return nil
}
