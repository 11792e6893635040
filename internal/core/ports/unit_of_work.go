package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Moving an identity between the active and removed collections happens inside
// one UnitOfWork so both writes commit or neither does.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// IdentityRepository returns the active identities bound to the current transaction.
	IdentityRepository() IdentityRepository

	// RemovedIdentityRepository returns the removed identities bound to the current transaction.
	RemovedIdentityRepository() RemovedIdentityRepository

	// ListingRepository returns the listings bound to the current transaction.
	ListingRepository() ListingRepository
}
