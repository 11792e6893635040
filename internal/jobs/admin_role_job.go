package jobs

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const adminRoleJobName = "admin_roles"

type AdminRoleNormalizer interface {
	Handle(ctx context.Context, command commands.NormalizeAdminRolesCommand) (int, error)
}

// AdminRoleJob writes the admin allow-list normalization back to storage.
type AdminRoleJob struct {
	normalizer AdminRoleNormalizer
	metrics    *metrics.Metrics
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewAdminRoleJob creates the job. schedule is a six field cron expression.
func NewAdminRoleJob(
	normalizer AdminRoleNormalizer,
	m *metrics.Metrics,
	schedule string,
	logger *slog.Logger,
) *AdminRoleJob {
	return &AdminRoleJob{
		normalizer: normalizer,
		metrics:    m,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "admin_role_job"),
	}
}

// Run normalizes every active identity once.
func (j *AdminRoleJob) Run(ctx context.Context) {
	written, err := j.normalizer.Handle(ctx, commands.NewNormalizeAdminRolesCommand())
	j.metrics.IncrementJobRun(adminRoleJobName, err)
	if err != nil {
		j.logger.ErrorContext(ctx, "Admin role job failed", "error", err)
		return
	}

	j.logger.DebugContext(ctx, "Admin roles normalized", "written", written)
}

// Start schedules the job. The first run happens on the schedule.
func (j *AdminRoleJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Admin role job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running sweep to finish.
func (j *AdminRoleJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Admin role job stopped")
}
