package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册任务并启动引擎
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron jobs: %w", err)
	}
	log.Info("Cron Jobs starting...", "entries", mgr.Entries())
	mgr.Start()
	return nil
}
