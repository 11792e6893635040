package commands

import (
	"context"
	"time"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
)

// ReviewIdentityCommandHandler applies the admin driven identity transitions:
// approve, reject and restore. Each runs as one read-modify-write inside its own
// unit of work. Two admins reviewing the same identity concurrently race and the
// last commit wins.
//
// Example:
//
//	handler := NewReviewIdentityCommandHandler(uowFactory, clock, sink)
//	cmd, _ := NewApproveIdentityCommand(id, adminID)
//	approved, err := handler.Approve(ctx, cmd)
type ReviewIdentityCommandHandler struct {
	uowFactory IdentityUoWFactory
	clock      kernel.Clock
	sink       ports.NotificationSink
}

func NewReviewIdentityCommandHandler(
	uowFactory IdentityUoWFactory,
	clock kernel.Clock,
	sink ports.NotificationSink,
) ReviewIdentityCommandHandler {
	return ReviewIdentityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		sink:       sink,
	}
}

// Approve approves the identity and sends account-approved.
func (h ReviewIdentityCommandHandler) Approve(
	ctx context.Context,
	command ApproveIdentityCommand,
) (*identity.Identity, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.transition(ctx, command.IdentityID(), "approve", func(i *identity.Identity, now time.Time) error {
		return i.Approve(now)
	})
}

// Reject rejects the identity and sends account-rejected.
func (h ReviewIdentityCommandHandler) Reject(
	ctx context.Context,
	command RejectIdentityCommand,
) (*identity.Identity, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.transition(ctx, command.IdentityID(), "reject", func(i *identity.Identity, now time.Time) error {
		return i.Reject(now)
	})
}

// Restore moves the identity to the requested status and sends account-restored.
func (h ReviewIdentityCommandHandler) Restore(
	ctx context.Context,
	command RestoreIdentityCommand,
) (*identity.Identity, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.transition(ctx, command.IdentityID(), "restore", func(i *identity.Identity, now time.Time) error {
		return i.Restore(command.Status(), now)
	})
}

func (h ReviewIdentityCommandHandler) transition(
	ctx context.Context,
	id kernel.UUID,
	action string,
	apply func(*identity.Identity, time.Time) error,
) (*identity.Identity, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewed, err := loadActive(ctx, uow, id, action)
	if err != nil {
		return nil, err
	}

	if err = apply(reviewed, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = uow.IdentityRepository().Update(ctx, reviewed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatch(ctx, h.sink, reviewed)
	return reviewed, nil
}
