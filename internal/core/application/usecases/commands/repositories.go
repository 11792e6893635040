// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and, once committed, notification dispatch.
package commands

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/notification"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across collections.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// IdentityRepoFactory provides access to the active identities within a transaction.
	IdentityRepoFactory interface {
		IdentityRepository() ports.IdentityRepository
	}

	// RemovedIdentityRepoFactory provides access to the removed identities within a transaction.
	RemovedIdentityRepoFactory interface {
		RemovedIdentityRepository() ports.RemovedIdentityRepository
	}

	// ListingRepoFactory provides access to listings within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// IdentityUoW manages transactions for identity lifecycle operations, which
	// may move an identity between the active and removed collections.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   removed := uow.RemovedIdentityRepository()
	//   active := uow.IdentityRepository()
	//   // ... write the destination, then delete the source
	//
	//   err = uow.Commit(ctx)
	IdentityUoW interface {
		TxManager
		IdentityRepoFactory
		RemovedIdentityRepoFactory
	}

	// IdentityUoWFactory creates new identity unit of work instances.
	IdentityUoWFactory interface {
		Create() IdentityUoW
	}

	// ListingUoW manages transactions for listing operations. Identities are
	// readable to resolve the owner of a new listing and to tell a removed
	// identity's id apart from an unknown listing.
	ListingUoW interface {
		TxManager
		ListingRepoFactory
		IdentityRepoFactory
		RemovedIdentityRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}
)

// notifier is implemented by aggregates that record notifications.
type notifier interface {
	PullNotifications() []notification.Notification
}

// dispatch hands the notifications recorded by aggregate to sink. It runs after
// Commit; the sink swallows delivery failures.
func dispatch(ctx context.Context, sink ports.NotificationSink, aggregate notifier) {
	for _, n := range aggregate.PullNotifications() {
		sink.Notify(ctx, n)
	}
}

// loadActive returns the active identity with id. An id that only exists in the
// removed collection is an InvalidTransitionError for action; an unknown id is
// an ObjectNotFoundError.
func loadActive(ctx context.Context, uow IdentityUoW, id kernel.UUID, action string) (*identity.Identity, error) {
	aggregate, err := uow.IdentityRepository().Get(ctx, id)
	if err == nil {
		return aggregate, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	_, removedErr := uow.RemovedIdentityRepository().Get(ctx, id)
	if removedErr == nil {
		return nil, errs.NewInvalidTransitionError("identity", "removed", action)
	}
	if !errors.Is(removedErr, errs.ErrObjectNotFound) {
		return nil, removedErr
	}
	return nil, err
}
