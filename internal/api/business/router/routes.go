// Package router đăng ký các route thuộc domain business: danh sách, featured, CRUD, pin bản đồ.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bushdl "asteria_local/internal/api/business/handler"
	apirouter "asteria_local/internal/api/router"
)

// Register đăng ký tất cả route business lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	businessHandler, err := bushdl.NewBusinessHandler()
	if err != nil {
		return fmt.Errorf("tạo BusinessHandler: %w", err)
	}

	// GET /businesses — lọc category/city/search, phân trang. Query: limit (1-100, mặc định 20), skip
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "GET", "", nil, businessHandler.HandleListBusinesses)

	// GET /businesses/featured — featured cho trang chủ. Query: limit (1-50, mặc định 10)
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "GET", "/featured", nil, businessHandler.HandleFeaturedBusinesses)

	// GET /businesses/:businessId
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "GET", "/:businessId", nil, businessHandler.HandleGetBusiness)

	// POST /businesses
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "POST", "", nil, businessHandler.HandleCreateBusiness)

	// PUT /businesses/:businessId — cập nhật một phần
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "PUT", "/:businessId", nil, businessHandler.HandleUpdateBusiness)

	// DELETE /businesses/:businessId — soft delete
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "DELETE", "/:businessId", nil, businessHandler.HandleDeleteBusiness)

	// GET /map/pins — cụm pin bản đồ. Query: category, city
	apirouter.RegisterRouteWithMiddleware(v1, "/map", "GET", "/pins", nil, businessHandler.HandleMapPins)

	return nil
}
