package main

import (
	"context"

	"asteria_local/internal/api/initsvc"
	"asteria_local/internal/global"
	"asteria_local/internal/logger"
)

// InitDefaultData seed danh mục + doanh nghiệp mẫu khi database trống, sau đó recompute business_count.
// Tắt được qua SEED_DATA_ENABLED=false.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.SeedData_Enabled {
		log.Info("Seed data disabled, skipping InitDefaultData")
		return
	}

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	if err := initService.InitDirectoryData(context.Background()); err != nil {
		log.Fatalf("Failed to initialize directory data: %v", err)
	}
	log.Info("Directory default data initialized")
}
