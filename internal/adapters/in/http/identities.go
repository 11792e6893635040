package http

import (
	"net/http"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// RegisterIdentity handles POST /api/v1/identities.
func (s *Server) RegisterIdentity(c echo.Context) error {
	var req NewIdentity
	if err := bindBody(c, &req); err != nil {
		return err
	}

	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterIdentityCommand(req.Email, req.Name, role, req.Profile.toDomain(role), req.Password)
	if err != nil {
		return err
	}

	registered, err := s.handlers.RegisterIdentity.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, identityFromDomain(registered))
}

// ListIdentities handles GET /api/v1/identities?status=.
func (s *Server) ListIdentities(c echo.Context) error {
	raw, err := queryParam(c, "status")
	if err != nil {
		return err
	}

	status := identity.UnknownStatus
	if raw != "" {
		if status, err = identity.ParseStatus(raw); err != nil {
			return err
		}
	}

	query, err := queries.NewListIdentitiesQuery(status)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListIdentities.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, identitiesFromViews(views))
}

// ListRemovedIdentities handles GET /api/v1/identities/removed.
func (s *Server) ListRemovedIdentities(c echo.Context) error {
	views, err := s.handlers.ListIdentities.HandleRemoved(c.Request().Context(), queries.NewListRemovedIdentitiesQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, identitiesFromViews(views))
}

// ApproveIdentity handles POST /api/v1/identities/{id}/approve.
func (s *Server) ApproveIdentity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveIdentityCommand(id, currentAccess(c).Identity.ID())
	if err != nil {
		return err
	}

	approved, err := s.handlers.ReviewIdentity.Approve(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, identityFromDomain(approved))
}

// RejectIdentity handles POST /api/v1/identities/{id}/reject.
func (s *Server) RejectIdentity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRejectIdentityCommand(id, currentAccess(c).Identity.ID())
	if err != nil {
		return err
	}

	rejected, err := s.handlers.ReviewIdentity.Reject(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, identityFromDomain(rejected))
}

// RestoreIdentity handles POST /api/v1/identities/{id}/restore.
func (s *Server) RestoreIdentity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req RestoreRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	status, err := identity.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRestoreIdentityCommand(id, currentAccess(c).Identity.ID(), status)
	if err != nil {
		return err
	}

	restored, err := s.handlers.ReviewIdentity.Restore(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, identityFromDomain(restored))
}

// RemoveIdentity handles DELETE /api/v1/identities/{id}. The identity's
// sessions end with it.
func (s *Server) RemoveIdentity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveIdentityCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.RemoveIdentity.Remove(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ReinstateIdentity handles POST /api/v1/identities/{id}/reinstate.
func (s *Server) ReinstateIdentity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReinstateIdentityCommand(id)
	if err != nil {
		return err
	}

	reinstated, err := s.handlers.RemoveIdentity.Reinstate(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, identityFromDomain(reinstated))
}
