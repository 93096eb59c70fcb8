package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env"
)

// LogConfig chứa cấu hình cho hệ thống logging.
// Giá trị đọc từ biến môi trường qua tag env, thiếu thì dùng envDefault.
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// Log Output: file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"`  // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"` // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"` // Nén file cũ

	// Log Paths
	LogPath         string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile         string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile       string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	PerformanceFile string `env:"LOG_PERF_FILE" envDefault:"performance.log"`
	ErrorFile       string `env:"LOG_ERROR_FILE" envDefault:"error.log"`
}

// DefaultConfig đọc cấu hình logging từ biến môi trường.
// GO_ENV quyết định level/format khi LOG_LEVEL/LOG_FORMAT không khai báo tường minh:
// development chạy debug + text, các môi trường khác chạy info + json.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{}
	if err := env.Parse(cfg); err != nil {
		// env.Parse chỉ lỗi khi giá trị sai kiểu (vd LOG_MAX_SIZE không phải số) — chạy tiếp với mặc định
		cfg = &LogConfig{
			Level:           "info",
			Format:          "text",
			Output:          "both",
			MaxSize:         100,
			MaxBackups:      7,
			MaxAge:          7,
			Compress:        true,
			LogPath:         "./logs",
			AppFile:         "app.log",
			AuditFile:       "audit.log",
			PerformanceFile: "performance.log",
			ErrorFile:       "error.log",
		}
	}

	isDevelopment := os.Getenv("GO_ENV") == "" || os.Getenv("GO_ENV") == "development"
	if os.Getenv("LOG_LEVEL") == "" {
		if isDevelopment {
			cfg.Level = "debug"
		} else {
			cfg.Level = "info"
		}
	}
	if os.Getenv("LOG_FORMAT") == "" && !isDevelopment {
		cfg.Format = "json"
	}

	cfg.Level = strings.ToLower(cfg.Level)
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Output = strings.ToLower(cfg.Output)

	return cfg
}
