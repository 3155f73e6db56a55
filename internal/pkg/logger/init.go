package logger

import (
	"Yatube/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogWriter gin 访问日志的输出目标
var LogWriter io.Writer = os.Stdout

// InitLogger 初始化全局 slog：stdout + 可选的滚动文件
func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}
	hStdout := log.NewJSONHandler(os.Stdout, opts)

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.File != "" {
		rolling := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    nonZero(cfg.MaxSizeMB, 100),
			MaxBackups: nonZero(cfg.MaxBackups, 3),
			MaxAge:     nonZero(cfg.MaxAgeDays, 7),
			Compress:   cfg.Compress,
		}
		hFile := log.NewJSONHandler(rolling, opts)
		finalHandler = NewTeeHandler(hStdout, hFile)
		LogWriter = io.MultiWriter(os.Stdout, rolling)
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}

// ParseLevel 未知级别按 info 处理
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func nonZero(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
