// Package busvc - Service doanh nghiệp địa phương (businesses).
// CRUD, lọc danh sách, featured ranking, gom pin bản đồ, cập nhật rating tổng hợp.
package busvc

import (
	"context"
	"fmt"
	"regexp"

	busdto "asteria_local/internal/api/business/dto"
	busmodels "asteria_local/internal/api/business/models"
	basesvc "asteria_local/internal/api/base/service"
	"asteria_local/internal/common"
	"asteria_local/internal/global"
	"asteria_local/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeaturedPositionSentinel thay cho featured_position vắng mặt khi sort —
// doanh nghiệp không featured luôn xếp sau mọi doanh nghiệp có vị trí.
const FeaturedPositionSentinel = 9999

// MaxMapPins giới hạn số cụm pin trả về cho bản đồ.
const MaxMapPins = 100

// BusinessService xử lý logic doanh nghiệp địa phương.
type BusinessService struct {
	*basesvc.BaseServiceMongoImpl[busmodels.Business]
}

// NewBusinessService tạo BusinessService mới.
func NewBusinessService() (*BusinessService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Businesses)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Businesses, common.ErrNotFound)
	}
	return &BusinessService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[busmodels.Business](coll),
	}, nil
}

// BuildListFilter dựng filter Mongo từ tham số danh sách.
// Luôn giới hạn is_active=true; search escape regex để match substring literal, không phân biệt hoa thường.
func BuildListFilter(q busdto.BusinessListQuery) bson.M {
	filter := bson.M{"is_active": true}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.City != "" {
		filter["address.city"] = q.City
	}
	if q.Search != "" {
		pattern := regexp.QuoteMeta(q.Search)
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

// List trả về doanh nghiệp active theo filter, có phân trang skip/limit.
func (s *BusinessService) List(ctx context.Context, q busdto.BusinessListQuery) ([]busmodels.Business, error) {
	opts := options.Find().
		SetSkip(int64(q.Skip)).
		SetLimit(int64(q.Limit))
	return s.Find(ctx, BuildListFilter(q), opts)
}

// FeaturedPipeline dựng pipeline xếp hạng featured:
// vị trí featured tăng dần (vắng mặt thay bằng sentinel nên xếp cuối),
// rồi rating giảm dần, rồi số review giảm dần.
func FeaturedPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
		{{Key: "$addFields", Value: bson.M{
			"sort_position": bson.M{"$ifNull": bson.A{"$featured_position", FeaturedPositionSentinel}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "sort_position", Value: 1},
			{Key: "rating_average", Value: -1},
			{Key: "total_reviews", Value: -1},
		}}},
		{{Key: "$limit", Value: limit}},
	}
}

// CompareFeatured so sánh 2 doanh nghiệp theo hợp đồng xếp hạng featured.
// Trả về âm khi a đứng trước b, dương khi sau, 0 khi ngang hàng.
func CompareFeatured(a, b *busmodels.Business) int {
	pa, pb := FeaturedPositionSentinel, FeaturedPositionSentinel
	if a.FeaturedPosition != nil {
		pa = *a.FeaturedPosition
	}
	if b.FeaturedPosition != nil {
		pb = *b.FeaturedPosition
	}
	if pa != pb {
		return pa - pb
	}
	if a.RatingAverage != b.RatingAverage {
		if a.RatingAverage > b.RatingAverage {
			return -1
		}
		return 1
	}
	return b.TotalReviews - a.TotalReviews
}

// Featured trả về doanh nghiệp featured cho trang chủ.
func (s *BusinessService) Featured(ctx context.Context, limit int) ([]busmodels.Business, error) {
	cursor, err := s.Collection().Aggregate(ctx, FeaturedPipeline(limit))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []busmodels.Business
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// ListByCategoryName trả về doanh nghiệp active của 1 danh mục (match đúng tên), rating giảm dần.
func (s *BusinessService) ListByCategoryName(ctx context.Context, categoryName string, limit int) ([]busmodels.Business, error) {
	filter := bson.M{
		"is_active": true,
		"category":  categoryName,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "rating_average", Value: -1}}).
		SetLimit(int64(limit))
	return s.Find(ctx, filter, opts)
}

// MapPinsPipeline dựng pipeline gom pin bản đồ: nhóm theo (category, neighborhood, lat, lng),
// tọa độ pin là trung bình cộng của các thành viên, count là số doanh nghiệp trong cụm.
func MapPinsPipeline(category, city string) mongo.Pipeline {
	match := bson.M{"is_active": true}
	if category != "" {
		match["category"] = category
	}
	if city != "" {
		match["address.city"] = city
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"category":     "$category",
				"neighborhood": "$address.neighborhood",
				"lat":          "$address.coordinates.lat",
				"lng":          "$address.coordinates.lng",
			},
			"count":   bson.M{"$sum": 1},
			"avg_lat": bson.M{"$avg": "$address.coordinates.lat"},
			"avg_lng": bson.M{"$avg": "$address.coordinates.lng"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":          0,
			"category":     "$_id.category",
			"neighborhood": "$_id.neighborhood",
			"lat":          "$avg_lat",
			"lng":          "$avg_lng",
			"count":        1,
		}}},
		{{Key: "$limit", Value: MaxMapPins}},
	}
}

// MapPins trả về các cụm pin bản đồ, lọc tùy chọn theo category/city, tối đa MaxMapPins cụm.
func (s *BusinessService) MapPins(ctx context.Context, category, city string) ([]busdto.MapPin, error) {
	cursor, err := s.Collection().Aggregate(ctx, MapPinsPipeline(category, city))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	pins := make([]busdto.MapPin, 0)
	if err := cursor.All(ctx, &pins); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return pins, nil
}

// GetById trả về doanh nghiệp theo id dạng chuỗi.
// Id sai định dạng coi như không tồn tại — trả ErrNotFound, không phân biệt với id vắng mặt.
func (s *BusinessService) GetById(ctx context.Context, businessId string) (busmodels.Business, error) {
	var zero busmodels.Business
	oid := utility.String2ObjectID(businessId)
	if oid.IsZero() {
		return zero, common.ErrNotFound
	}
	return s.FindOneById(ctx, oid)
}

// Create tạo doanh nghiệp mới từ dữ liệu đã validate.
func (s *BusinessService) Create(ctx context.Context, input *busdto.BusinessCreateInput) (busmodels.Business, error) {
	business := busmodels.Business{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Phone:       input.Phone,
		Whatsapp:    input.Whatsapp,
		Email:       input.Email,
		Website:     input.Website,
		Address:     input.Address,
		Images:      input.Images,
		PriceRange:  input.PriceRange,
		Services:    input.Services,
		Hours:       input.Hours,
	}
	if business.Images == nil {
		business.Images = []string{}
	}
	if business.Services == nil {
		business.Services = []string{}
	}
	return s.InsertOne(ctx, business)
}

// buildUpdateSet gom các field khác nil của input thành map $set.
func buildUpdateSet(input *busdto.BusinessUpdateInput) bson.M {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Subcategory != nil {
		set["subcategory"] = *input.Subcategory
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Whatsapp != nil {
		set["whatsapp"] = *input.Whatsapp
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Website != nil {
		set["website"] = *input.Website
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}
	if input.PriceRange != nil {
		set["price_range"] = *input.PriceRange
	}
	if input.Services != nil {
		set["services"] = *input.Services
	}
	if input.Hours != nil {
		set["hours"] = *input.Hours
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}
	return set
}

// Update cập nhật một phần doanh nghiệp — chỉ ghi các field khác nil.
// Id sai định dạng hoặc không tồn tại đều trả ErrNotFound.
func (s *BusinessService) Update(ctx context.Context, businessId string, input *busdto.BusinessUpdateInput) (busmodels.Business, error) {
	var zero busmodels.Business
	oid := utility.String2ObjectID(businessId)
	if oid.IsZero() {
		return zero, common.ErrNotFound
	}
	set := buildUpdateSet(input)
	if len(set) == 0 {
		return s.FindOneById(ctx, oid)
	}
	return s.UpdateById(ctx, oid, set)
}

// SoftDelete ẩn doanh nghiệp khỏi mọi listing bằng is_active=false. Không có xóa cứng.
func (s *BusinessService) SoftDelete(ctx context.Context, businessId string) (busmodels.Business, error) {
	var zero busmodels.Business
	oid := utility.String2ObjectID(businessId)
	if oid.IsZero() {
		return zero, common.ErrNotFound
	}
	customBson := &utility.CustomBson{}
	update, err := customBson.Set(bson.M{"is_active": false})
	if err != nil {
		return zero, err
	}
	return s.UpdateById(ctx, oid, update)
}

// UpdateRating ghi rating tổng hợp đã tính lại lên doanh nghiệp.
func (s *BusinessService) UpdateRating(ctx context.Context, businessId string, average float64, totalReviews int) error {
	oid := utility.String2ObjectID(businessId)
	if oid.IsZero() {
		return common.ErrNotFound
	}
	_, err := s.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"rating_average": average,
		"total_reviews":  totalReviews,
	}, nil)
	return err
}

// ActiveByIdFilter dựng filter chọn doanh nghiệp active theo ObjectID.
func ActiveByIdFilter(oid primitive.ObjectID) bson.M {
	return bson.M{"_id": oid, "is_active": true}
}

// ActiveExists kiểm tra doanh nghiệp active có tồn tại không.
func (s *BusinessService) ActiveExists(ctx context.Context, oid primitive.ObjectID) (bool, error) {
	return s.DocumentExists(ctx, ActiveByIdFilter(oid))
}
