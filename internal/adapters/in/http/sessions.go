package http

import (
	"errors"
	"net/http"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/sessions. Wrong credentials are reported as 401,
// a rejected account as 403.
func (s *Server) Login(c echo.Context) error {
	var req Credentials
	if err := bindBody(c, &req); err != nil {
		return err
	}

	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password, role)
	if err != nil {
		return err
	}

	result, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	s.metrics.IncrementLogin(loginOutcome(err))
	if err != nil {
		if errors.Is(err, errs.ErrNotAuthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, Session{
		Token:     result.Session.Token,
		ExpiresAt: result.Session.ExpiresAt,
		Identity:  identityFromDomain(result.Identity),
	})
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.LoginSucceeded
	case errors.Is(err, errs.ErrNotAuthorized):
		return metrics.LoginDenied
	case errors.Is(err, errs.ErrAccountRejected):
		return metrics.LoginRejected
	case errors.Is(err, errs.ErrObjectNotFound):
		return metrics.LoginUnknown
	default:
		return metrics.LoginFailed
	}
}

// GetCurrentSession handles GET /api/v1/sessions/current. Anonymous callers
// get all flags false.
func (s *Server) GetCurrentSession(c echo.Context) error {
	return c.JSON(http.StatusOK, accessFromDomain(currentAccess(c)))
}

// Logout handles DELETE /api/v1/sessions/current.
func (s *Server) Logout(c echo.Context) error {
	cmd, err := commands.NewLogoutCommand(currentToken(c))
	if err != nil {
		return err
	}

	if err = s.handlers.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
