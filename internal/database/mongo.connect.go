package database

import (
	"context"
	"fmt"
	"time"

	"asteria_local/config"
	"asteria_local/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Thông số connection pool và timeout cho client MongoDB.
const (
	mongoMinPoolSize    = 10
	mongoMaxPoolSize    = 50
	mongoConnectTimeout = 5 * time.Second
	mongoSocketTimeout  = 10 * time.Second
	mongoPingTimeout    = 2 * time.Second
)

// Connect mở kết nối tới MongoDB theo URI trong cấu hình và ping thử trước khi trả về client.
// URI rỗng hoặc ping thất bại đều trả lỗi, không trả client nửa vời.
func Connect(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("chuỗi kết nối MongoDB đang rỗng")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMinPoolSize(mongoMinPoolSize).
		SetMaxPoolSize(mongoMaxPoolSize).
		SetConnectTimeout(mongoConnectTimeout).
		SetSocketTimeout(mongoSocketTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 2*mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("kết nối MongoDB thất bại: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), mongoPingTimeout)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB thất bại: %w", err)
	}

	logger.GetAppLogger().Info("Kết nối MongoDB thành công")
	return client, nil
}

// Disconnect đóng client MongoDB và trả pool về cho hệ điều hành.
func Disconnect(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Ngắt kết nối MongoDB thất bại")
		return err
	}
	logger.GetAppLogger().Info("Đã ngắt kết nối MongoDB")
	return nil
}
