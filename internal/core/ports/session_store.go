package ports

import (
	"context"
	"time"

	"loadboard/internal/core/domain/model/kernel"
)

// Session binds an opaque bearer token to the identity that logged in.
type Session struct {
	Token      string
	IdentityID kernel.UUID
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// SessionStore keeps login sessions. A session never outlives the store's TTL.
type SessionStore interface {
	// Create opens a new session for identityID and returns it with a fresh token.
	Create(ctx context.Context, identityID kernel.UUID) (Session, error)

	// Get returns the session for token, or an ObjectNotFoundError when it is
	// unknown or expired.
	Get(ctx context.Context, token string) (Session, error)

	// Delete closes one session. Closing an unknown session is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteByIdentity closes every session of identityID and returns how many
	// were closed.
	DeleteByIdentity(ctx context.Context, identityID kernel.UUID) (int, error)
}
