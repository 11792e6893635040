// Package listingrepo maps listing aggregates to the listings table.
package listingrepo

import (
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO is a row of the listings table. The owner's name and address are
// copied at submission time.
type ListingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID `gorm:"type:uuid;index"`
	OwnerName  string
	OwnerEmail string

	Pickup        LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery      LocationDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	EquipmentType string
	WeightLbs     int
	RateCents     int64
	AvailableDate time.Time
	ContactName   string
	ContactPhone  string
	Notes         string `gorm:"type:text"`

	Status          int       `gorm:"index"`
	SubmissionDate  time.Time `gorm:"index"`
	ApprovalDate    *time.Time
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string
}

func (ListingDTO) TableName() string {
	return "listings"
}

type LocationDTO struct {
	City  string
	State string `gorm:"type:varchar(2)"`
}

func fromDomain(aggregate *listing.Listing) ListingDTO {
	var reviewedBy *uuid.UUID
	if id := aggregate.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	f := aggregate.Freight()
	owner := aggregate.Owner()
	return ListingDTO{
		ID:         aggregate.ID().Bytes(),
		OwnerID:    owner.ID.Bytes(),
		OwnerName:  owner.Name,
		OwnerEmail: owner.Email.String(),
		Pickup: LocationDTO{
			City:  f.Pickup().City(),
			State: f.Pickup().State(),
		},
		Delivery: LocationDTO{
			City:  f.Delivery().City(),
			State: f.Delivery().State(),
		},
		EquipmentType:   f.EquipmentType(),
		WeightLbs:       f.WeightLbs(),
		RateCents:       f.RateCents(),
		AvailableDate:   f.AvailableDate(),
		ContactName:     f.ContactName(),
		ContactPhone:    f.ContactPhone(),
		Notes:           f.Notes(),
		Status:          int(aggregate.Status()),
		SubmissionDate:  aggregate.SubmissionDate(),
		ApprovalDate:    aggregate.ApprovalDate(),
		ReviewedBy:      reviewedBy,
		RejectionReason: aggregate.RejectionReason(),
	}
}

func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	ownerEmail, err := kernel.NewEmail(dto.OwnerEmail)
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		adminID, adminErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if adminErr != nil {
			return nil, adminErr
		}
		reviewedBy = &adminID
	}

	pickup, err := kernel.NewLocation(dto.Pickup.City, dto.Pickup.State)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewLocation(dto.Delivery.City, dto.Delivery.State)
	if err != nil {
		return nil, err
	}

	freight, err := listing.NewFreight(listing.FreightParams{
		Pickup:        pickup,
		Delivery:      delivery,
		EquipmentType: dto.EquipmentType,
		WeightLbs:     dto.WeightLbs,
		RateCents:     dto.RateCents,
		AvailableDate: dto.AvailableDate,
		ContactName:   dto.ContactName,
		ContactPhone:  dto.ContactPhone,
		Notes:         dto.Notes,
	})
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(listing.Snapshot{
		ID:              id,
		Owner:           listing.Owner{ID: ownerID, Name: dto.OwnerName, Email: ownerEmail},
		Freight:         freight,
		Status:          listing.Status(dto.Status),
		SubmissionDate:  dto.SubmissionDate,
		ApprovalDate:    dto.ApprovalDate,
		ReviewedBy:      reviewedBy,
		RejectionReason: dto.RejectionReason,
	})
}
