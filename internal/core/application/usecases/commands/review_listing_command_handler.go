package commands

import (
	"context"
	"errors"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// ReviewListingCommandHandler applies admin reviews and owner deletions to
// listings. Concurrent reviews of one listing race and the last commit wins.
type ReviewListingCommandHandler struct {
	uowFactory ListingUoWFactory
	clock      kernel.Clock
	sink       ports.NotificationSink
}

func NewReviewListingCommandHandler(
	uowFactory ListingUoWFactory,
	clock kernel.Clock,
	sink ports.NotificationSink,
) ReviewListingCommandHandler {
	return ReviewListingCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		sink:       sink,
	}
}

// Approve approves a pending listing and sends listing-approved to its owner.
func (h ReviewListingCommandHandler) Approve(
	ctx context.Context,
	command ApproveListingCommand,
) (*listing.Listing, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.review(ctx, command.ListingID(), func(l *listing.Listing, now time.Time) error {
		return l.Approve(command.ActingAdminID(), now)
	})
}

// Reject rejects a pending listing and sends listing-rejected with the reason.
func (h ReviewListingCommandHandler) Reject(
	ctx context.Context,
	command RejectListingCommand,
) (*listing.Listing, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return h.review(ctx, command.ListingID(), func(l *listing.Listing, now time.Time) error {
		return l.Reject(command.ActingAdminID(), command.Reason(), now)
	})
}

// Remove hard-deletes the listing when the requester owns it, whatever its
// status. Anyone else gets a NotAuthorizedError.
func (h ReviewListingCommandHandler) Remove(ctx context.Context, command RemoveListingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ListingRepository()

	target, err := repo.Get(ctx, command.ListingID())
	if err != nil {
		return err
	}

	if err = target.EnsureOwner(command.RequesterID()); err != nil {
		return err
	}

	if err = repo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ReviewListingCommandHandler) review(
	ctx context.Context,
	id kernel.UUID,
	apply func(*listing.Listing, time.Time) error,
) (*listing.Listing, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ListingRepository()

	reviewed, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		if _, removedErr := uow.RemovedIdentityRepository().Get(ctx, id); removedErr == nil {
			return nil, errs.NewInvalidTransitionError("listing", "removed identity", "review")
		}
	}
	if err != nil {
		return nil, err
	}

	if err = apply(reviewed, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, reviewed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatch(ctx, h.sink, reviewed)
	return reviewed, nil
}
