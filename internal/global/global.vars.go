package global

import (
	"asteria_local/config"
	"asteria_local/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Directory_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Directory_CollectionName struct {
	Businesses string // Tên collection cho doanh nghiệp địa phương
	Categories string // Tên collection cho danh mục ngành nghề
	Reviews    string // Tên collection cho đánh giá của khách hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                                          // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                         // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                            // Cấu hình của server
var MongoDB_ColNames MongoDB_Directory_CollectionName = *new(MongoDB_Directory_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
