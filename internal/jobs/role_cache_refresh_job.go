package jobs

import (
	"context"
	"log/slog"

	"kebabhouse/internal/core/application/roles"

	"github.com/robfig/cron/v3"
)

// RoleCacheRefreshJob periodically drops the memoized role cache so role
// changes made directly in storage become visible without a restart. The
// schedule comes from configuration; when no expression is set the job is
// never created and roles stay cached for the process lifetime.
type RoleCacheRefreshJob struct {
	provider *roles.Provider
	spec     string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRoleCacheRefreshJob creates a refresh job with the given cron
// expression, seconds field included.
func NewRoleCacheRefreshJob(provider *roles.Provider, spec string, logger *slog.Logger) *RoleCacheRefreshJob {
	return &RoleCacheRefreshJob{
		provider: provider,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "role_cache_refresh_job"),
	}
}

// Start schedules the refresh. Fails when the cron expression is invalid.
func (j *RoleCacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		dropped := j.provider.CachedCount()
		j.provider.Clear()
		j.logger.InfoContext(ctx, "Role cache cleared", "entries", dropped)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Role cache refresh job started", "schedule", j.spec)
	return nil
}

// Stop stops the refresh job.
func (j *RoleCacheRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Role cache refresh job stopped")
}
