package http

import (
	"errors"
	"net/http"
	"time"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SubmitListing handles POST /api/v1/listings.
func (s *Server) SubmitListing(c echo.Context) error {
	var req NewListing
	if err := bindBody(c, &req); err != nil {
		return err
	}

	params, err := req.toParams()
	if err != nil {
		return err
	}

	cmd, err := commands.NewSubmitListingCommand(currentAccess(c).Identity.ID(), params)
	if err != nil {
		return err
	}

	submitted, err := s.handlers.SubmitListing.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, listingFromDomain(submitted))
}

func (req NewListing) toParams() (listing.FreightParams, error) {
	pickup, pickupErr := kernel.NewLocation(req.Pickup.City, req.Pickup.State)
	delivery, deliveryErr := kernel.NewLocation(req.Delivery.City, req.Delivery.State)
	available, dateErr := time.Parse(time.DateOnly, req.AvailableDate)
	if dateErr != nil {
		dateErr = errs.NewValueIsInvalidErrorWithCause("availableDate", dateErr)
	}
	if err := errors.Join(pickupErr, deliveryErr, dateErr); err != nil {
		return listing.FreightParams{}, err
	}

	return listing.FreightParams{
		Pickup:        pickup,
		Delivery:      delivery,
		EquipmentType: req.EquipmentType,
		WeightLbs:     req.WeightLbs,
		RateCents:     req.RateCents,
		AvailableDate: available,
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		Notes:         req.Notes,
	}, nil
}

// ListListings handles GET /api/v1/listings?status=&owner=me.
//
// owner=me lists the caller's own listings in any status, whatever the caller's
// approval status. Otherwise approved listings are open to every approved
// identity and the review queues are limited to admins.
func (s *Server) ListListings(c echo.Context) error {
	rawStatus, err := queryParam(c, "status")
	if err != nil {
		return err
	}
	owner, err := queryParam(c, "owner")
	if err != nil {
		return err
	}

	status := listing.UnknownStatus
	if rawStatus != "" {
		if status, err = listing.ParseStatus(rawStatus); err != nil {
			return err
		}
	}

	access := currentAccess(c)
	var ownerID *kernel.UUID
	switch {
	case owner == "me":
		id := access.Identity.ID()
		ownerID = &id
	case owner != "":
		return errs.NewValueIsInvalidError("owner")
	case status == listing.Approved:
		if err = access.RequireApproved(); err != nil {
			return err
		}
	default:
		if err = access.RequireAdmin(); err != nil {
			return err
		}
	}

	query, err := queries.NewListListingsQuery(status, ownerID)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListListings.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listingsFromViews(views))
}

// ApproveListing handles POST /api/v1/listings/{id}/approve.
func (s *Server) ApproveListing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveListingCommand(id, currentAccess(c).Identity.ID())
	if err != nil {
		return err
	}

	approved, err := s.handlers.ReviewListing.Approve(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listingFromDomain(approved))
}

// RejectListing handles POST /api/v1/listings/{id}/reject. The body is optional.
func (s *Server) RejectListing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req RejectListingRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRejectListingCommand(id, currentAccess(c).Identity.ID(), req.Reason)
	if err != nil {
		return err
	}

	rejected, err := s.handlers.ReviewListing.Reject(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listingFromDomain(rejected))
}

// RemoveListing handles DELETE /api/v1/listings/{id}. Only the owner may
// remove a listing.
func (s *Server) RemoveListing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveListingCommand(id, currentAccess(c).Identity.ID())
	if err != nil {
		return err
	}

	if err = s.handlers.ReviewListing.Remove(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
