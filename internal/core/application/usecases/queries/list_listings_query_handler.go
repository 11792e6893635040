package queries

import (
	"context"
	"strings"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListListingsQueryHandler reads listings straight from the listings table.
//
// Example:
//
//	handler := NewListListingsQueryHandler(db)
//	query, _ := NewListListingsQuery(listing.Pending, nil)
//	views, err := handler.Handle(ctx, query)
type ListListingsQueryHandler struct {
	db *gorm.DB
}

func NewListListingsQueryHandler(db *gorm.DB) ListListingsQueryHandler {
	return ListListingsQueryHandler{db: db}
}

// Handle returns the matching listings, oldest submission first.
func (h ListListingsQueryHandler) Handle(ctx context.Context, query ListListingsQuery) ([]ListingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.status != listing.UnknownStatus {
		where = append(where, "status = ?")
		args = append(args, int(query.status))
	}
	if query.ownerID != nil {
		where = append(where, "owner_id = ?")
		args = append(args, query.ownerID.Bytes())
	}

	sql := `
		SELECT
			id, owner_id, owner_name, owner_email,
			pickup_city, pickup_state, delivery_city, delivery_state,
			equipment_type, weight_lbs, rate_cents, available_date,
			contact_name, contact_phone, notes,
			status, submission_date, approval_date, reviewed_by, rejection_reason
		FROM listings`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY submission_date, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ListingView, 0)
	for rows.Next() {
		var (
			view                        ListingView
			id, ownerID                 uuid.UUID
			reviewedBy                  *uuid.UUID
			pickupCity, pickupState     string
			deliveryCity, deliveryState string
			status                      int
		)

		err = rows.Scan(
			&id, &ownerID, &view.OwnerName, &view.OwnerEmail,
			&pickupCity, &pickupState, &deliveryCity, &deliveryState,
			&view.EquipmentType, &view.WeightLbs, &view.RateCents, &view.AvailableDate,
			&view.ContactName, &view.ContactPhone, &view.Notes,
			&status, &view.SubmissionDate, &view.ApprovalDate, &reviewedBy, &view.RejectionReason,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if reviewedBy != nil {
			adminID, idErr := kernel.UUIDFromBytes(reviewedBy[:])
			if idErr != nil {
				return nil, idErr
			}
			view.ReviewedBy = &adminID
		}
		if view.Pickup, err = kernel.NewLocation(pickupCity, pickupState); err != nil {
			return nil, err
		}
		if view.Delivery, err = kernel.NewLocation(deliveryCity, deliveryState); err != nil {
			return nil, err
		}
		view.Route = view.Pickup.String() + " to " + view.Delivery.String()
		view.Status = listing.Status(status)

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
