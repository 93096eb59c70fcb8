// Package cathdl - Handler API danh mục ngành nghề.
package cathdl

import (
	"fmt"

	basehdl "asteria_local/internal/api/base/handler"
	busvc "asteria_local/internal/api/business/service"
	catdto "asteria_local/internal/api/category/dto"
	catvc "asteria_local/internal/api/category/service"
	"asteria_local/internal/common"
	"asteria_local/internal/global"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý API danh mục. Giữ thêm BusinessService
// cho route /categories/:categorySlug/businesses (resolve slug → tên danh mục rồi lọc).
type CategoryHandler struct {
	CategoryService *catvc.CategoryService
	BusinessService *busvc.BusinessService
}

// NewCategoryHandler tạo CategoryHandler mới.
func NewCategoryHandler() (*CategoryHandler, error) {
	categorySvc, err := catvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	businessSvc, err := busvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("tạo BusinessService: %w", err)
	}
	return &CategoryHandler{CategoryService: categorySvc, BusinessService: businessSvc}, nil
}

// HandleListCategories xử lý GET /categories — mọi danh mục active kèm business_count live, sort theo tên.
func (h *CategoryHandler) HandleListCategories(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		categories, err := h.CategoryService.ListAll(c.Context())
		return basehdl.HandleResponse(c, categories, err)
	})
}

// HandlePopularCategories xử lý GET /categories/popular. Query: limit (1-20, mặc định 10).
func (h *CategoryHandler) HandlePopularCategories(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		limit := basehdl.ClampLimit(c.Query("limit"), 10, 20)
		categories, err := h.CategoryService.Popular(c.Context(), limit)
		return basehdl.HandleResponse(c, categories, err)
	})
}

// HandleGetCategory xử lý GET /categories/:categorySlug.
func (h *CategoryHandler) HandleGetCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		category, err := h.CategoryService.GetBySlug(c.Context(), c.Params("categorySlug"))
		return basehdl.HandleResponse(c, category, err)
	})
}

// HandleBusinessesByCategory xử lý GET /categories/:categorySlug/businesses.
// Resolve slug ra danh mục trước (slug lạ → 404) rồi lọc doanh nghiệp theo tên danh mục, rating giảm dần.
func (h *CategoryHandler) HandleBusinessesByCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		category, err := h.CategoryService.GetBySlug(c.Context(), c.Params("categorySlug"))
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		limit := basehdl.ClampLimit(c.Query("limit"), 20, 100)
		businesses, err := h.BusinessService.ListByCategoryName(c.Context(), category.Name, limit)
		return basehdl.HandleResponse(c, businesses, err)
	})
}

// HandleCreateCategory xử lý POST /categories.
func (h *CategoryHandler) HandleCreateCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catdto.CategoryCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := global.Validate.Struct(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, "Dữ liệu danh mục không hợp lệ", common.StatusBadRequest, err.Error()))
		}
		category, err := h.CategoryService.Create(c.Context(), &input)
		return basehdl.HandleResponse(c, category, err)
	})
}

// HandleRecomputeCounts xử lý POST /categories/recompute-counts — job bảo trì ghi lại bản cache business_count.
func (h *CategoryHandler) HandleRecomputeCounts(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		updated, err := h.CategoryService.RecomputeCounts(c.Context())
		return basehdl.HandleResponse(c, fiber.Map{"updated": updated}, err)
	})
}
