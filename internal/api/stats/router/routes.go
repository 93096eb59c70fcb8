// Package router đăng ký route thuộc domain stats.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "asteria_local/internal/api/router"
	statshdl "asteria_local/internal/api/stats/handler"
)

// Register đăng ký route stats lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	statsHandler, err := statshdl.NewStatsHandler()
	if err != nil {
		return fmt.Errorf("tạo StatsHandler: %w", err)
	}

	// GET /stats — snapshot thống kê nền tảng
	apirouter.RegisterRouteWithMiddleware(v1, "/stats", "GET", "", nil, statsHandler.HandleGetStats)

	return nil
}
