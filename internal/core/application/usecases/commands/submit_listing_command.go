package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrSubmitListingCommandIsNotConstructed = errors.New(
	"SubmitListingCommand must be created via NewSubmitListingCommand constructor",
)

// SubmitListingCommand posts a new load on behalf of ownerID.
//
// Example:
//
//	pickup, _ := kernel.NewLocation("Dallas", "TX")
//	delivery, _ := kernel.NewLocation("Denver", "CO")
//	cmd, err := NewSubmitListingCommand(ownerID, listing.FreightParams{
//	    Pickup: pickup, Delivery: delivery, EquipmentType: "Dry Van",
//	    WeightLbs: 42000, RateCents: 185000, AvailableDate: day,
//	})
type SubmitListingCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	freight listing.Freight

	guard guard.ConstructorGuard
}

func NewSubmitListingCommand(ownerID kernel.UUID, params listing.FreightParams) (SubmitListingCommand, error) {
	cmd := SubmitListingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setFreight(params),
	); err != nil {
		return SubmitListingCommand{}, err
	}

	return cmd, nil
}

func (c SubmitListingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitListingCommandIsNotConstructed)
}

func (c SubmitListingCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c SubmitListingCommand) Freight() listing.Freight {
	return c.freight
}

func (c *SubmitListingCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	c.ownerID = id
	return nil
}

func (c *SubmitListingCommand) setFreight(params listing.FreightParams) error {
	freight, err := listing.NewFreight(params)
	if err != nil {
		return err
	}
	c.freight = freight
	return nil
}
