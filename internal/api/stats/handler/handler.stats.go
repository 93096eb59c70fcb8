// Package statshdl - Handler API thống kê nền tảng.
package statshdl

import (
	"fmt"

	basehdl "asteria_local/internal/api/base/handler"
	statsvc "asteria_local/internal/api/stats/service"

	"github.com/gofiber/fiber/v3"
)

// StatsHandler xử lý API thống kê.
type StatsHandler struct {
	StatsService *statsvc.StatsService
}

// NewStatsHandler tạo StatsHandler mới.
func NewStatsHandler() (*StatsHandler, error) {
	svc, err := statsvc.NewStatsService()
	if err != nil {
		return nil, fmt.Errorf("tạo StatsService: %w", err)
	}
	return &StatsHandler{StatsService: svc}, nil
}

// HandleGetStats xử lý GET /stats — snapshot thống kê cho trang chủ.
func (h *StatsHandler) HandleGetStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.StatsService.PlatformStats(c.Context())
		return basehdl.HandleResponse(c, stats, err)
	})
}
