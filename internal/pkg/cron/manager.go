package cron

import (
	"FarewellVault/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	feedStatsJob *job.FeedStatsJob
}

func NewManager(feedStatsJob *job.FeedStatsJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		feedStatsJob: feedStatsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.feedStatsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
