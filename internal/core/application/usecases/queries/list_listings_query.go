// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the HTTP surface and never change state.
package queries

import (
	"errors"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/pkg/guard"
)

var ErrListListingsQueryIsNotConstructed = errors.New(
	"ListListingsQuery must be created via NewListListingsQuery constructor",
)

// ListListingsQuery filters listings by status and, optionally, by owner.
// listing.UnknownStatus matches every status.
//
// Example:
//
//	pending, _ := NewListListingsQuery(listing.Pending, nil)
//	mine, _ := NewListListingsQuery(listing.UnknownStatus, &ownerID)
type ListListingsQuery struct {
	status  listing.Status
	ownerID *kernel.UUID
	guard   guard.ConstructorGuard
}

func NewListListingsQuery(status listing.Status, ownerID *kernel.UUID) (ListListingsQuery, error) {
	var errList []error
	if status != listing.UnknownStatus {
		errList = append(errList, status.Validate())
	}
	if ownerID != nil {
		errList = append(errList, ownerID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListListingsQuery{}, err
	}

	return ListListingsQuery{
		status:  status,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListListingsQuery) Validate() error {
	return q.guard.Validate(ErrListListingsQueryIsNotConstructed)
}

// ListingView is the read model of a listing.
type ListingView struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	OwnerName       string
	OwnerEmail      string
	Pickup          kernel.Location
	Delivery        kernel.Location
	Route           string
	EquipmentType   string
	WeightLbs       int
	RateCents       int64
	AvailableDate   time.Time
	ContactName     string
	ContactPhone    string
	Notes           string
	Status          listing.Status
	SubmissionDate  time.Time
	ApprovalDate    *time.Time
	ReviewedBy      *kernel.UUID
	RejectionReason string
}

// NewListingView maps an aggregate, typically one a command just returned.
func NewListingView(l *listing.Listing) ListingView {
	f := l.Freight()
	owner := l.Owner()
	return ListingView{
		ID:              l.ID(),
		OwnerID:         owner.ID,
		OwnerName:       owner.Name,
		OwnerEmail:      owner.Email.String(),
		Pickup:          f.Pickup(),
		Delivery:        f.Delivery(),
		Route:           f.Route(),
		EquipmentType:   f.EquipmentType(),
		WeightLbs:       f.WeightLbs(),
		RateCents:       f.RateCents(),
		AvailableDate:   f.AvailableDate(),
		ContactName:     f.ContactName(),
		ContactPhone:    f.ContactPhone(),
		Notes:           f.Notes(),
		Status:          l.Status(),
		SubmissionDate:  l.SubmissionDate(),
		ApprovalDate:    l.ApprovalDate(),
		ReviewedBy:      l.ReviewedBy(),
		RejectionReason: l.RejectionReason(),
	}
}
