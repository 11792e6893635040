package commands

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
)

// SubmitListingCommandHandler creates pending listings. Whether the owner may
// submit at all is decided upstream by the access gate.
type SubmitListingCommandHandler struct {
	uowFactory ListingUoWFactory
	clock      kernel.Clock
}

func NewSubmitListingCommandHandler(uowFactory ListingUoWFactory, clock kernel.Clock) SubmitListingCommandHandler {
	return SubmitListingCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a new Pending listing owned by the command's owner. An unknown
// owner is an ObjectNotFoundError. No notification is sent.
func (h SubmitListingCommandHandler) Handle(
	ctx context.Context,
	command SubmitListingCommand,
) (*listing.Listing, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.IdentityRepository().Get(ctx, command.OwnerID())
	if err != nil {
		return nil, err
	}

	submitted, err := listing.NewListing(
		kernel.NewUUID(),
		listing.Owner{ID: owner.ID(), Name: owner.Name(), Email: owner.Email()},
		command.Freight(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ListingRepository().Add(ctx, submitted); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return submitted, nil
}
