package jobs

import (
	"heavylingam-backend/internal/cache"
	"heavylingam-backend/internal/config"
	"heavylingam-backend/internal/logger"
	"heavylingam-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	hub    *cache.Hub
	warm   *cache.SnapshotCache
	admin  service.AdminService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies. warm may be
// nil when Redis is disabled; the snapshot job then becomes a no-op.
func NewJobRunner(hub *cache.Hub, warm *cache.SnapshotCache, admin service.AdminService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		hub:    hub,
		warm:   warm,
		admin:  admin,
		config: cfg,
	}
}

// Config returns the configuration used by the job runner
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
