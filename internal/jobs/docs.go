// Package jobs provides scheduled background tasks for the load board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules are six field expressions (seconds first) taken from configuration.
//
// # Available Jobs
//
// 1. ReviewQueueJob - counts pending identities and listings and publishes them as gauges
// 2. AdminRoleJob - writes the admin allow-list normalization back to the identities table
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewReviewQueueJob(countHandler, m, "*/30 * * * * *", logger),
//		jobs.NewAdminRoleJob(normalizeHandler, m, "0 0 * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Every run is counted in loadboard_job_runs_total. Failed runs are logged and
// the next run happens on schedule. An invalid schedule fails Start, and
// StartAll stops jobs it already started.
package jobs
