package ports

import (
	"context"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
)

// ListingRepository is the collection of listings. Deleting a listing destroys it.
type ListingRepository interface {
	Add(ctx context.Context, aggregate *listing.Listing) error
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get returns the listing with the id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// GetAll returns every listing ordered by submission date.
	GetAll(ctx context.Context) ([]*listing.Listing, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
