// Package ports defines the contracts between the identity and listing core and
// its infrastructure: repositories for the three record collections, the unit of
// work that makes them change together, the session store and the notification
// sink.
package ports

import (
	"context"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
)

// IdentityRepository is the collection of active identities. Implementations
// apply the admin allow-list normalization to every identity they return.
type IdentityRepository interface {
	// Add persists a new identity. The e-mail must not belong to another active identity.
	Add(ctx context.Context, aggregate *identity.Identity) error

	// Update persists the current state of an existing identity.
	Update(ctx context.Context, aggregate *identity.Identity) error

	// Get returns the active identity with the id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error)

	// FindByEmail returns the active identity owning email, or an ObjectNotFoundError.
	FindByEmail(ctx context.Context, email kernel.Email) (*identity.Identity, error)

	// GetAll returns every active identity ordered by registration date.
	GetAll(ctx context.Context) ([]*identity.Identity, error)

	// Delete removes the identity from the active collection. Deleting a missing
	// identity is an ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}

// RemovedIdentityRepository is the collection of removed identities. Records keep
// their id, approval status and removal date.
type RemovedIdentityRepository interface {
	Add(ctx context.Context, aggregate *identity.Identity) error
	Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error)
	GetAll(ctx context.Context) ([]*identity.Identity, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
