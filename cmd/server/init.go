package main

import (
	"context"

	"asteria_local/config"
	busmodels "asteria_local/internal/api/business/models"
	catmodels "asteria_local/internal/api/category/models"
	rvmodels "asteria_local/internal/api/review/models"
	"asteria_local/internal/database"
	"asteria_local/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc.
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames khởi tạo tên các collection trong database.
func initColNames() {
	global.MongoDB_ColNames.Businesses = "businesses"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Reviews = "reviews"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator (đăng ký custom validators: no_xss, slug, exists).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server từ config/env/<GO_ENV>.env.
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo database/collections và tạo index.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.Connect(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Index từ struct tag của từng model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Businesses), busmodels.Business{}); err != nil {
		logrus.Errorf("Failed to create business indexes: %v", err)
	}
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), catmodels.Category{}); err != nil {
		logrus.Errorf("Failed to create category indexes: %v", err)
	}
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Reviews), rvmodels.Review{}); err != nil {
		logrus.Errorf("Failed to create review indexes: %v", err)
	}

	// Index compound/text không diễn tả được bằng tag
	if err := database.CreateDirectoryAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional indexes: %v", err)
	}
	logrus.Info("Created indexes")
}
