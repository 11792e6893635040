package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reviewQueueJob *ReviewQueueJob
	adminRoleJob   *AdminRoleJob
}

func NewJobManager(reviewQueueJob *ReviewQueueJob, adminRoleJob *AdminRoleJob) *JobManager {
	return &JobManager{
		reviewQueueJob: reviewQueueJob,
		adminRoleJob:   adminRoleJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.adminRoleJob.Start(); err != nil {
		return fmt.Errorf("failed to start admin role job: %w", err)
	}

	if err := jm.reviewQueueJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.adminRoleJob.Stop()
		return fmt.Errorf("failed to start review queue job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reviewQueueJob.Stop()
	jm.adminRoleJob.Stop()
}
