package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var (
	ErrRemoveIdentityCommandIsNotConstructed = errors.New(
		"RemoveIdentityCommand must be created via NewRemoveIdentityCommand constructor",
	)
	ErrReinstateIdentityCommandIsNotConstructed = errors.New(
		"ReinstateIdentityCommand must be created via NewReinstateIdentityCommand constructor",
	)
)

// RemoveIdentityCommand moves an active identity to the removed collection and
// ends all of its sessions.
type RemoveIdentityCommand struct {
	identityID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewRemoveIdentityCommand(identityID kernel.UUID) (RemoveIdentityCommand, error) {
	if err := identityID.Validate(); err != nil {
		return RemoveIdentityCommand{}, errs.NewValueIsRequiredErrorWithCause("identity id", err)
	}
	return RemoveIdentityCommand{identityID: identityID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveIdentityCommand) Validate() error {
	return c.guard.Validate(ErrRemoveIdentityCommandIsNotConstructed)
}

func (c RemoveIdentityCommand) IdentityID() kernel.UUID {
	return c.identityID
}

// ReinstateIdentityCommand moves a removed identity back to the active
// collection with its pre-removal approval status.
type ReinstateIdentityCommand struct {
	identityID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewReinstateIdentityCommand(identityID kernel.UUID) (ReinstateIdentityCommand, error) {
	if err := identityID.Validate(); err != nil {
		return ReinstateIdentityCommand{}, errs.NewValueIsRequiredErrorWithCause("identity id", err)
	}
	return ReinstateIdentityCommand{identityID: identityID, guard: guard.NewConstructorGuard()}, nil
}

func (c ReinstateIdentityCommand) Validate() error {
	return c.guard.Validate(ErrReinstateIdentityCommandIsNotConstructed)
}

func (c ReinstateIdentityCommand) IdentityID() kernel.UUID {
	return c.identityID
}
