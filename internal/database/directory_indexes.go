// Package database - Index bổ sung cho danh bạ (nested fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"asteria_local/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDirectoryAdditionalIndexes tạo các index bổ sung cho danh bạ (nested fields, compound phức tạp).
// Gọi sau CreateIndexes cho từng collection.
func CreateDirectoryAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	businesses := db.Collection(global.MongoDB_ColNames.Businesses)

	// businesses: (category, is_active) — filter danh sách theo danh mục
	if _, err := businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "is_active", Value: 1},
		},
		Options: options.Index().SetName("business_category_active"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// businesses: (address.city, is_active) — filter danh sách theo thành phố
	if _, err := businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "address.city", Value: 1},
			{Key: "is_active", Value: 1},
		},
		Options: options.Index().SetName("business_city_active"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// businesses: (rating_average desc, total_reviews desc) — sort nổi bật và theo danh mục
	if _, err := businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "rating_average", Value: -1},
			{Key: "total_reviews", Value: -1},
		},
		Options: options.Index().SetName("business_rating_reviews"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// businesses: text (name, description) — tìm kiếm full-text
	if _, err := businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
		},
		Options: options.Index().SetName("business_name_description_text"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reviews: (business_id, created_at desc) — danh sách đánh giá theo doanh nghiệp
	reviews := db.Collection(global.MongoDB_ColNames.Reviews)
	if _, err := reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "business_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("review_business_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
