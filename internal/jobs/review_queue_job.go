package jobs

import (
	"context"
	"log/slog"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const reviewQueueJobName = "review_queue"

type ReviewQueueCounter interface {
	Handle(ctx context.Context, query queries.CountReviewQueueQuery) (queries.ReviewQueue, error)
}

// ReviewQueueJob refreshes the pending identity and listing gauges.
type ReviewQueueJob struct {
	counter  ReviewQueueCounter
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReviewQueueJob creates the job. schedule is a six field cron expression.
func NewReviewQueueJob(
	counter ReviewQueueCounter,
	m *metrics.Metrics,
	schedule string,
	logger *slog.Logger,
) *ReviewQueueJob {
	return &ReviewQueueJob{
		counter:  counter,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "review_queue_job"),
	}
}

// Run counts the review queue once and publishes the result.
func (j *ReviewQueueJob) Run(ctx context.Context) {
	queue, err := j.counter.Handle(ctx, queries.NewCountReviewQueueQuery())
	j.metrics.IncrementJobRun(reviewQueueJobName, err)
	if err != nil {
		j.logger.ErrorContext(ctx, "Review queue job failed", "error", err)
		return
	}

	j.metrics.SetReviewQueue(queue.PendingIdentities, queue.PendingListings)
}

// Start runs the job once and then on its schedule.
func (j *ReviewQueueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.Run(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Review queue job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running count to finish.
func (j *ReviewQueueJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Review queue job stopped")
}
