package queries

import (
	"context"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/core/ports"

	"gorm.io/gorm"
)

// CountReviewQueueQueryHandler counts pending identities through the repository,
// so allow-listed addresses are never counted, and pending listings with SQL.
type CountReviewQueueQueryHandler struct {
	db         *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

func NewCountReviewQueueQueryHandler(db *gorm.DB, uowFactory ports.UnitOfWorkFactory) CountReviewQueueQueryHandler {
	return CountReviewQueueQueryHandler{
		db:         db,
		uowFactory: uowFactory,
	}
}

func (h CountReviewQueueQueryHandler) Handle(ctx context.Context, query CountReviewQueueQuery) (ReviewQueue, error) {
	if err := query.Validate(); err != nil {
		return ReviewQueue{}, err
	}

	identities, err := h.uowFactory.Create().IdentityRepository().GetAll(ctx)
	if err != nil {
		return ReviewQueue{}, err
	}

	var queue ReviewQueue
	for _, i := range identities {
		if i.Status() == identity.Pending {
			queue.PendingIdentities++
		}
	}

	var listings int64
	err = h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM listings WHERE status = ?", int(listing.Pending)).
		Scan(&listings).Error
	if err != nil {
		return ReviewQueue{}, err
	}
	queue.PendingListings = int(listings)

	return queue, nil
}
