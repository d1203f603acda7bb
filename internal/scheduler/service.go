package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/viralops/viral-content-bot/internal/config"
	"github.com/viralops/viral-content-bot/internal/pipeline"
)

// Service handles scheduling of pipeline runs
type Service struct {
	config          *config.Config
	pipelineService *pipeline.Service
	cron            *cron.Cron
}

// NewService creates a new scheduler service
func NewService(cfg *config.Config, pipelineService *pipeline.Service) *Service {
	return &Service{
		config:          cfg,
		pipelineService: pipelineService,
		cron:            cron.New(cron.WithSeconds()),
	}
}

// Start begins scheduled pipeline runs. An empty RUN_SCHEDULE disables the
// scheduler entirely; runs then happen only through the HTTP trigger.
func (s *Service) Start() error {
	if s.config.RunSchedule == "" {
		logrus.Info("No run schedule configured, scheduler disabled")
		return nil
	}

	var cronExpression string
	switch s.config.RunSchedule {
	case "daily":
		// Run daily at 9 AM UTC
		cronExpression = "0 0 9 * * *"
	case "weekly":
		// Run weekly on Monday at 9 AM UTC
		cronExpression = "0 0 9 * * MON"
	}

	_, err := s.cron.AddFunc(cronExpression, func() {
		logrus.Info("Starting scheduled pipeline run")
		if err := s.pipelineService.RunScheduled(); err != nil {
			logrus.Errorf("Scheduled pipeline run failed: %v", err)
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with %s schedule", s.config.RunSchedule)
	return nil
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}
