package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var (
	ErrApproveIdentityCommandIsNotConstructed = errors.New(
		"ApproveIdentityCommand must be created via NewApproveIdentityCommand constructor",
	)
	ErrRejectIdentityCommandIsNotConstructed = errors.New(
		"RejectIdentityCommand must be created via NewRejectIdentityCommand constructor",
	)
	ErrRestoreIdentityCommandIsNotConstructed = errors.New(
		"RestoreIdentityCommand must be created via NewRestoreIdentityCommand constructor",
	)
)

// reviewTarget is the identity an admin acts on.
type reviewTarget struct {
	identityID    kernel.UUID
	actingAdminID kernel.UUID
}

func newReviewTarget(identityID, actingAdminID kernel.UUID) (reviewTarget, error) {
	var errList []error
	if err := identityID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("identity id", err))
	}
	if err := actingAdminID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("acting admin id", err))
	}
	if err := errors.Join(errList...); err != nil {
		return reviewTarget{}, err
	}
	return reviewTarget{identityID: identityID, actingAdminID: actingAdminID}, nil
}

// ApproveIdentityCommand approves an identity. Approving twice refreshes the
// approval date.
type ApproveIdentityCommand struct {
	reviewTarget
	guard guard.ConstructorGuard
}

func NewApproveIdentityCommand(identityID, actingAdminID kernel.UUID) (ApproveIdentityCommand, error) {
	target, err := newReviewTarget(identityID, actingAdminID)
	if err != nil {
		return ApproveIdentityCommand{}, err
	}
	return ApproveIdentityCommand{reviewTarget: target, guard: guard.NewConstructorGuard()}, nil
}

func (c ApproveIdentityCommand) Validate() error {
	return c.guard.Validate(ErrApproveIdentityCommandIsNotConstructed)
}

func (c ApproveIdentityCommand) IdentityID() kernel.UUID    { return c.identityID }
func (c ApproveIdentityCommand) ActingAdminID() kernel.UUID { return c.actingAdminID }

// RejectIdentityCommand rejects an identity.
type RejectIdentityCommand struct {
	reviewTarget
	guard guard.ConstructorGuard
}

func NewRejectIdentityCommand(identityID, actingAdminID kernel.UUID) (RejectIdentityCommand, error) {
	target, err := newReviewTarget(identityID, actingAdminID)
	if err != nil {
		return RejectIdentityCommand{}, err
	}
	return RejectIdentityCommand{reviewTarget: target, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectIdentityCommand) Validate() error {
	return c.guard.Validate(ErrRejectIdentityCommandIsNotConstructed)
}

func (c RejectIdentityCommand) IdentityID() kernel.UUID    { return c.identityID }
func (c RejectIdentityCommand) ActingAdminID() kernel.UUID { return c.actingAdminID }

// RestoreIdentityCommand moves an identity back to Pending or Approved.
type RestoreIdentityCommand struct {
	reviewTarget
	status identity.Status
	guard  guard.ConstructorGuard
}

// NewRestoreIdentityCommand accepts identity.Pending and identity.Approved only.
func NewRestoreIdentityCommand(
	identityID, actingAdminID kernel.UUID,
	status identity.Status,
) (RestoreIdentityCommand, error) {
	target, err := newReviewTarget(identityID, actingAdminID)
	if status != identity.Pending && status != identity.Approved {
		err = errors.Join(err, errs.NewInvalidTransitionError("identity", "any", "restore to "+status.String()))
	}
	if err != nil {
		return RestoreIdentityCommand{}, err
	}
	return RestoreIdentityCommand{reviewTarget: target, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c RestoreIdentityCommand) Validate() error {
	return c.guard.Validate(ErrRestoreIdentityCommandIsNotConstructed)
}

func (c RestoreIdentityCommand) IdentityID() kernel.UUID    { return c.identityID }
func (c RestoreIdentityCommand) ActingAdminID() kernel.UUID { return c.actingAdminID }
func (c RestoreIdentityCommand) Status() identity.Status    { return c.status }
