// Package router đăng ký các route thuộc domain category: danh sách, popular, by-slug, recompute.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cathdl "asteria_local/internal/api/category/handler"
	apirouter "asteria_local/internal/api/router"
)

// Register đăng ký tất cả route category lên v1.
// Route tĩnh (popular, recompute-counts) phải đăng ký trước route param :categorySlug.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cathdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}

	// GET /categories — tất cả danh mục active kèm business_count live
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "", nil, categoryHandler.HandleListCategories)

	// GET /categories/popular — danh mục phổ biến. Query: limit (1-20, mặc định 10)
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "/popular", nil, categoryHandler.HandlePopularCategories)

	// POST /categories/recompute-counts — job bảo trì ghi lại bản cache business_count
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "POST", "/recompute-counts", nil, categoryHandler.HandleRecomputeCounts)

	// GET /categories/:categorySlug
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "/:categorySlug", nil, categoryHandler.HandleGetCategory)

	// GET /categories/:categorySlug/businesses — doanh nghiệp trong danh mục. Query: limit (1-100, mặc định 20)
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "/:categorySlug/businesses", nil, categoryHandler.HandleBusinessesByCategory)

	// POST /categories
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "POST", "", nil, categoryHandler.HandleCreateCategory)

	return nil
}
