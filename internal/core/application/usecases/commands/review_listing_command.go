package commands

import (
	"errors"
	"strings"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var (
	ErrApproveListingCommandIsNotConstructed = errors.New(
		"ApproveListingCommand must be created via NewApproveListingCommand constructor",
	)
	ErrRejectListingCommandIsNotConstructed = errors.New(
		"RejectListingCommand must be created via NewRejectListingCommand constructor",
	)
	ErrRemoveListingCommandIsNotConstructed = errors.New(
		"RemoveListingCommand must be created via NewRemoveListingCommand constructor",
	)
)

func validateIDs(named map[string]kernel.UUID) error {
	var errList []error
	for _, name := range []string{"listing id", "acting admin id", "requester id"} {
		id, ok := named[name]
		if !ok {
			continue
		}
		if err := id.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(name, err))
		}
	}
	return errors.Join(errList...)
}

// ApproveListingCommand approves a pending listing.
type ApproveListingCommand struct {
	listingID     kernel.UUID
	actingAdminID kernel.UUID
	guard         guard.ConstructorGuard
}

func NewApproveListingCommand(listingID, actingAdminID kernel.UUID) (ApproveListingCommand, error) {
	if err := validateIDs(map[string]kernel.UUID{
		"listing id":      listingID,
		"acting admin id": actingAdminID,
	}); err != nil {
		return ApproveListingCommand{}, err
	}
	return ApproveListingCommand{
		listingID:     listingID,
		actingAdminID: actingAdminID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveListingCommand) Validate() error {
	return c.guard.Validate(ErrApproveListingCommandIsNotConstructed)
}

func (c ApproveListingCommand) ListingID() kernel.UUID     { return c.listingID }
func (c ApproveListingCommand) ActingAdminID() kernel.UUID { return c.actingAdminID }

// RejectListingCommand rejects a pending listing with an optional reason.
type RejectListingCommand struct {
	listingID     kernel.UUID
	actingAdminID kernel.UUID
	reason        string
	guard         guard.ConstructorGuard
}

func NewRejectListingCommand(listingID, actingAdminID kernel.UUID, reason string) (RejectListingCommand, error) {
	if err := validateIDs(map[string]kernel.UUID{
		"listing id":      listingID,
		"acting admin id": actingAdminID,
	}); err != nil {
		return RejectListingCommand{}, err
	}
	return RejectListingCommand{
		listingID:     listingID,
		actingAdminID: actingAdminID,
		reason:        strings.TrimSpace(reason),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RejectListingCommand) Validate() error {
	return c.guard.Validate(ErrRejectListingCommandIsNotConstructed)
}

func (c RejectListingCommand) ListingID() kernel.UUID     { return c.listingID }
func (c RejectListingCommand) ActingAdminID() kernel.UUID { return c.actingAdminID }
func (c RejectListingCommand) Reason() string             { return c.reason }

// RemoveListingCommand deletes a listing on behalf of requesterID.
type RemoveListingCommand struct {
	listingID   kernel.UUID
	requesterID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewRemoveListingCommand(listingID, requesterID kernel.UUID) (RemoveListingCommand, error) {
	if err := validateIDs(map[string]kernel.UUID{
		"listing id":   listingID,
		"requester id": requesterID,
	}); err != nil {
		return RemoveListingCommand{}, err
	}
	return RemoveListingCommand{
		listingID:   listingID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveListingCommand) Validate() error {
	return c.guard.Validate(ErrRemoveListingCommandIsNotConstructed)
}

func (c RemoveListingCommand) ListingID() kernel.UUID   { return c.listingID }
func (c RemoveListingCommand) RequesterID() kernel.UUID { return c.requesterID }
