// Package rvhdl - Handler API đánh giá.
package rvhdl

import (
	"fmt"

	basehdl "asteria_local/internal/api/base/handler"
	rvdto "asteria_local/internal/api/review/dto"
	rvvc "asteria_local/internal/api/review/service"
	"asteria_local/internal/common"
	"asteria_local/internal/global"

	"github.com/gofiber/fiber/v3"
)

// ReviewHandler xử lý API đánh giá.
type ReviewHandler struct {
	ReviewService *rvvc.ReviewService
}

// NewReviewHandler tạo ReviewHandler mới.
func NewReviewHandler() (*ReviewHandler, error) {
	svc, err := rvvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReviewService: %w", err)
	}
	return &ReviewHandler{ReviewService: svc}, nil
}

// HandleCreateReview xử lý POST /businesses/:businessId/reviews — tạo review rồi tính lại rating.
func (h *ReviewHandler) HandleCreateReview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input rvdto.ReviewCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		input.BusinessID = c.Params("businessId")
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Dữ liệu đánh giá không hợp lệ", common.StatusBadRequest, err.Error()))
		}
		review, err := h.ReviewService.Create(c.Context(), &input)
		return basehdl.HandleResponse(c, review, err)
	})
}

// HandleListReviews xử lý GET /businesses/:businessId/reviews. Query: limit (1-100, mặc định 20).
func (h *ReviewHandler) HandleListReviews(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		limit := basehdl.ClampLimit(c.Query("limit"), 20, 100)
		reviews, err := h.ReviewService.ListByBusiness(c.Context(), c.Params("businessId"), limit)
		return basehdl.HandleResponse(c, reviews, err)
	})
}

// HandleRecalculateRating xử lý POST /businesses/:businessId/reviews/recalculate —
// chạy lại workflow tính rating tổng hợp (caller tự gọi lại khi lỗi, không auto-retry).
func (h *ReviewHandler) HandleRecalculateRating(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		summary, err := h.ReviewService.RecalculateRating(c.Context(), c.Params("businessId"))
		return basehdl.HandleResponse(c, summary, err)
	})
}
