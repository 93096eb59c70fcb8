// Package router đăng ký các route thuộc domain review, nested dưới /businesses/:businessId.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	rvhdl "asteria_local/internal/api/review/handler"
	apirouter "asteria_local/internal/api/router"
)

// Register đăng ký tất cả route review lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reviewHandler, err := rvhdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("tạo ReviewHandler: %w", err)
	}

	// POST /businesses/:businessId/reviews — tạo review, sau đó tính lại rating tổng hợp
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "POST", "/:businessId/reviews", nil, reviewHandler.HandleCreateReview)

	// GET /businesses/:businessId/reviews — review mới nhất trước. Query: limit (1-100, mặc định 20)
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "GET", "/:businessId/reviews", nil, reviewHandler.HandleListReviews)

	// POST /businesses/:businessId/reviews/recalculate — chạy lại workflow tính rating
	apirouter.RegisterRouteWithMiddleware(v1, "/businesses", "POST", "/:businessId/reviews/recalculate", nil, reviewHandler.HandleRecalculateRating)

	return nil
}
