package http

import (
	"context"
	"net/http"
	"strings"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

const (
	accessKey = "access"
	tokenKey  = "session_token"
)

// AccessResolver turns a bearer token into the caller's access.
type AccessResolver interface {
	Handle(ctx context.Context, query queries.GetAccessQuery) (services.Access, error)
}

// ResolveAccess reads the bearer token and stores the caller's access in the
// echo context. A missing or unknown token yields anonymous access.
func ResolveAccess(resolver AccessResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			access, err := resolver.Handle(c.Request().Context(), queries.NewGetAccessQuery(token))
			if err != nil {
				return err
			}
			c.Set(tokenKey, token)
			c.Set(accessKey, access)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func currentAccess(c echo.Context) services.Access {
	access, _ := c.Get(accessKey).(services.Access)
	return access
}

func currentToken(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}

// require wraps an access check. Anonymous callers get 401, authenticated
// callers that fail the check get 403.
func require(check func(services.Access) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			access := currentAccess(c)
			if err := check(access); err != nil {
				if !access.IsAuthenticated {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				return err
			}
			return next(c)
		}
	}
}

var (
	requireAuthenticated    = require(services.Access.RequireAuthenticated)
	requireAdmin            = require(services.Access.RequireAdmin)
	requireListingSubmitter = require(services.Access.RequireListingSubmitter)
)
