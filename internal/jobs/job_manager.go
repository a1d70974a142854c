package jobs

import (
	"fmt"
	"log/slog"

	"kebabhouse/internal/core/application/roles"
)

// JobManager coordinates the scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	roleCacheRefreshJob *RoleCacheRefreshJob
}

// NewJobManager creates a job manager. An empty refresh expression disables
// the role cache refresh job.
func NewJobManager(provider *roles.Provider, roleCacheRefreshCron string, logger *slog.Logger) *JobManager {
	manager := &JobManager{}
	if roleCacheRefreshCron != "" {
		manager.roleCacheRefreshJob = NewRoleCacheRefreshJob(provider, roleCacheRefreshCron, logger)
	}
	return manager
}

// StartAll starts every configured job.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.roleCacheRefreshJob != nil {
		if err := jm.roleCacheRefreshJob.Start(); err != nil {
			return fmt.Errorf("failed to start role cache refresh job: %w", err)
		}
	}
	return nil
}

// StopAll stops every configured job gracefully.
func (jm *JobManager) StopAll() {
	if jm.roleCacheRefreshJob != nil {
		jm.roleCacheRefreshJob.Stop()
	}
}
