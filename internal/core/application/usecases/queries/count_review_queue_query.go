package queries

import (
	"errors"

	"loadboard/internal/pkg/guard"
)

var ErrCountReviewQueueQueryIsNotConstructed = errors.New(
	"CountReviewQueueQuery must be created via NewCountReviewQueueQuery constructor",
)

// CountReviewQueueQuery counts what is waiting for an admin decision.
type CountReviewQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewCountReviewQueueQuery() CountReviewQueueQuery {
	return CountReviewQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q CountReviewQueueQuery) Validate() error {
	return q.guard.Validate(ErrCountReviewQueueQueryIsNotConstructed)
}

// ReviewQueue holds the sizes of both review queues.
type ReviewQueue struct {
	PendingIdentities int
	PendingListings   int
}
