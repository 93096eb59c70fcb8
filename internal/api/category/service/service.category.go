// Package catvc - Service danh mục ngành nghề (categories).
// Đếm live số doanh nghiệp mỗi danh mục qua $lookup, recompute bản cache business_count.
package catvc

import (
	"context"
	"fmt"

	basesvc "asteria_local/internal/api/base/service"
	catdto "asteria_local/internal/api/category/dto"
	catmodels "asteria_local/internal/api/category/models"
	"asteria_local/internal/common"
	"asteria_local/internal/global"
	"asteria_local/internal/logger"
	"asteria_local/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryService xử lý logic danh mục.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catmodels.Category]
}

// NewCategoryService tạo CategoryService mới.
func NewCategoryService() (*CategoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Categories, common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catmodels.Category](coll),
	}, nil
}

// liveCountStages các stage $lookup đếm live doanh nghiệp active có category = name,
// ghi kết quả vào business_count (0 khi danh mục trống). Dùng chung cho ListAll và Popular.
func liveCountStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from": global.MongoDB_ColNames.Businesses,
			"let":  bson.M{"category_name": "$name"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr":     bson.M{"$eq": bson.A{"$category", "$$category_name"}},
					"is_active": true,
				}},
				bson.M{"$count": "count"},
			},
			"as": "business_counts",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"business_count": bson.M{
				"$ifNull": bson.A{bson.M{"$arrayElemAt": bson.A{"$business_counts.count", 0}}, 0},
			},
		}}},
		{{Key: "$project", Value: bson.M{"business_counts": 0}}},
	}
}

// ListAllPipeline dựng pipeline danh sách danh mục active kèm count live, sort theo tên tăng dần.
func ListAllPipeline() mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
	}
	pipeline = append(pipeline, liveCountStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}})
	return pipeline
}

// PopularPipeline dựng pipeline danh mục phổ biến: count live giảm dần, giới hạn limit.
func PopularPipeline(limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
	}
	pipeline = append(pipeline, liveCountStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "business_count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	)
	return pipeline
}

// aggregate chạy pipeline trên collection categories và decode về slice Category.
func (s *CategoryService) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]catmodels.Category, error) {
	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []catmodels.Category
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// ListAll trả về mọi danh mục active kèm business_count tính live — không tin bản cache.
func (s *CategoryService) ListAll(ctx context.Context) ([]catmodels.Category, error) {
	return s.aggregate(ctx, ListAllPipeline())
}

// Popular trả về danh mục phổ biến nhất theo count live.
func (s *CategoryService) Popular(ctx context.Context, limit int) ([]catmodels.Category, error) {
	return s.aggregate(ctx, PopularPipeline(limit))
}

// GetBySlug trả về danh mục active theo slug. Slug không tồn tại trả ErrNotFound.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (catmodels.Category, error) {
	return s.FindOne(ctx, bson.M{"slug": slug, "is_active": true}, nil)
}

// GetById trả về danh mục theo id dạng chuỗi. Id sai định dạng coi như không tồn tại.
func (s *CategoryService) GetById(ctx context.Context, categoryId string) (catmodels.Category, error) {
	var zero catmodels.Category
	oid := utility.String2ObjectID(categoryId)
	if oid.IsZero() {
		return zero, common.ErrNotFound
	}
	return s.FindOneById(ctx, oid)
}

// Create tạo danh mục mới từ dữ liệu đã validate. Slug trùng trả lỗi duplicate từ unique index.
func (s *CategoryService) Create(ctx context.Context, input *catdto.CategoryCreateInput) (catmodels.Category, error) {
	category := catmodels.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Icon:        input.Icon,
		Description: input.Description,
	}
	return s.InsertOne(ctx, category)
}

// RecomputeCounts đếm lại doanh nghiệp active cho từng danh mục active và ghi vào business_count.
// Idempotent — chạy lại không đổi kết quả khi dữ liệu không đổi. Không atomic giữa các danh mục.
// Trả về số danh mục đã cập nhật.
func (s *CategoryService) RecomputeCounts(ctx context.Context) (int, error) {
	log := logger.GetAppLogger()

	businessColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Businesses)
	if !exist {
		return 0, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Businesses, common.ErrNotFound)
	}

	categories, err := s.Find(ctx, bson.M{"is_active": true}, nil)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, category := range categories {
		count, err := businessColl.CountDocuments(ctx, bson.M{
			"category":  category.Name,
			"is_active": true,
		})
		if err != nil {
			return updated, common.ConvertMongoError(err)
		}
		if _, err := s.UpdateById(ctx, category.ID, bson.M{"business_count": int(count)}); err != nil {
			return updated, err
		}
		updated++
	}

	log.WithField("categories", updated).Info("Đã recompute business_count cho danh mục")
	return updated, nil
}
