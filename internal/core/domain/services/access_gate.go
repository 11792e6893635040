package services

import (
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/pkg/errs"
)

// Access is what a session identity may do. The zero value is an anonymous
// visitor.
type Access struct {
	Identity         *identity.Identity
	IsAuthenticated  bool
	IsApproved       bool
	IsAdmin          bool
	CanSubmitListing bool
}

// AccessGate derives Access from the current session identity. Lifecycle
// handlers never look at sessions themselves; transport adapters ask the gate
// before invoking them.
type AccessGate struct{}

// NewAccessGate creates a new AccessGate instance.
func NewAccessGate() AccessGate {
	return AccessGate{}
}

// Evaluate derives the access flags. A nil identity and a removed identity are
// both anonymous.
//
// Example:
//
//	access := gate.Evaluate(current)
//	if err := access.RequireListingSubmitter(); err != nil {
//	    return err
//	}
func (AccessGate) Evaluate(current *identity.Identity) Access {
	if current == nil || current.Validate() != nil || current.IsRemoved() {
		return Access{}
	}

	approved := current.Status() == identity.Approved
	return Access{
		Identity:         current,
		IsAuthenticated:  true,
		IsApproved:       approved,
		IsAdmin:          approved && current.Role() == identity.Admin,
		CanSubmitListing: approved && current.Role() == identity.Shipper,
	}
}

// RequireAuthenticated fails for anonymous visitors.
func (a Access) RequireAuthenticated() error {
	if !a.IsAuthenticated {
		return errs.NewNotAuthorizedError("login required")
	}
	return nil
}

// RequireApproved fails unless the identity is approved.
func (a Access) RequireApproved() error {
	if err := a.RequireAuthenticated(); err != nil {
		return err
	}
	if !a.IsApproved {
		return errs.NewNotAuthorizedError("account is not approved")
	}
	return nil
}

// RequireAdmin fails unless the identity is an approved admin.
func (a Access) RequireAdmin() error {
	if err := a.RequireApproved(); err != nil {
		return err
	}
	if !a.IsAdmin {
		return errs.NewNotAuthorizedError("admin role required")
	}
	return nil
}

// RequireListingSubmitter fails unless the identity is an approved shipper.
func (a Access) RequireListingSubmitter() error {
	if err := a.RequireApproved(); err != nil {
		return err
	}
	if !a.CanSubmitListing {
		return errs.NewNotAuthorizedError("only approved shippers may submit listings")
	}
	return nil
}
