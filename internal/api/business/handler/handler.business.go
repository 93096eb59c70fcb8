// Package bushdl - Handler API doanh nghiệp địa phương.
package bushdl

import (
	"fmt"

	basehdl "asteria_local/internal/api/base/handler"
	busdto "asteria_local/internal/api/business/dto"
	busvc "asteria_local/internal/api/business/service"
	"asteria_local/internal/common"
	"asteria_local/internal/global"

	"github.com/gofiber/fiber/v3"
)

// BusinessHandler xử lý API doanh nghiệp.
type BusinessHandler struct {
	BusinessService *busvc.BusinessService
}

// NewBusinessHandler tạo BusinessHandler mới.
func NewBusinessHandler() (*BusinessHandler, error) {
	svc, err := busvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("tạo BusinessService: %w", err)
	}
	return &BusinessHandler{BusinessService: svc}, nil
}

// HandleListBusinesses xử lý GET /businesses — lọc theo category/city/search, phân trang skip/limit.
func (h *BusinessHandler) HandleListBusinesses(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		q := busdto.BusinessListQuery{
			Category: c.Query("category"),
			City:     c.Query("city"),
			Search:   c.Query("search"),
			Limit:    basehdl.ClampLimit(c.Query("limit"), 20, 100),
			Skip:     basehdl.ClampSkip(c.Query("skip")),
		}
		businesses, err := h.BusinessService.List(c.Context(), q)
		return basehdl.HandleResponse(c, businesses, err)
	})
}

// HandleFeaturedBusinesses xử lý GET /businesses/featured — danh sách featured cho trang chủ.
func (h *BusinessHandler) HandleFeaturedBusinesses(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		limit := basehdl.ClampLimit(c.Query("limit"), 10, 50)
		businesses, err := h.BusinessService.Featured(c.Context(), limit)
		return basehdl.HandleResponse(c, businesses, err)
	})
}

// HandleGetBusiness xử lý GET /businesses/:businessId.
// Id sai định dạng trả 404 như id không tồn tại.
func (h *BusinessHandler) HandleGetBusiness(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		business, err := h.BusinessService.GetById(c.Context(), c.Params("businessId"))
		return basehdl.HandleResponse(c, business, err)
	})
}

// HandleCreateBusiness xử lý POST /businesses.
func (h *BusinessHandler) HandleCreateBusiness(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input busdto.BusinessCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Dữ liệu doanh nghiệp không hợp lệ", common.StatusBadRequest, err.Error()))
		}
		business, err := h.BusinessService.Create(c.Context(), &input)
		return basehdl.HandleResponse(c, business, err)
	})
}

// HandleUpdateBusiness xử lý PUT /businesses/:businessId — cập nhật một phần, chỉ field gửi lên.
func (h *BusinessHandler) HandleUpdateBusiness(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input busdto.BusinessUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Dữ liệu cập nhật không hợp lệ", common.StatusBadRequest, err.Error()))
		}
		business, err := h.BusinessService.Update(c.Context(), c.Params("businessId"), &input)
		return basehdl.HandleResponse(c, business, err)
	})
}

// HandleDeleteBusiness xử lý DELETE /businesses/:businessId — soft delete (is_active=false).
func (h *BusinessHandler) HandleDeleteBusiness(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		business, err := h.BusinessService.SoftDelete(c.Context(), c.Params("businessId"))
		return basehdl.HandleResponse(c, business, err)
	})
}

// HandleMapPins xử lý GET /map/pins — cụm pin bản đồ, lọc tùy chọn theo category/city.
func (h *BusinessHandler) HandleMapPins(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		pins, err := h.BusinessService.MapPins(c.Context(), c.Query("category"), c.Query("city"))
		return basehdl.HandleResponse(c, pins, err)
	})
}
