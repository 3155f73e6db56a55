package cron

import (
	"Yatube/internal/api/config"
	"Yatube/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	cfg             config.CronConfig
	mediaCleanupJob *job.MediaCleanupJob
}

func NewCronManager(cfg config.CronConfig, mediaCleanupJob *job.MediaCleanupJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		cfg:             cfg,
		mediaCleanupJob: mediaCleanupJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if !s.cfg.MediaCleanEnable {
		log.Info("media cleanup job disabled")
		return nil
	}
	if _, err := s.engine.AddJob(s.cfg.MediaCleanSpec, s.mediaCleanupJob); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数量
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	<-s.engine.Stop().Done()
}
