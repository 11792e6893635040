package http

import (
	"errors"
	"net/http"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	RegisterIdentity commands.RegisterIdentityCommandHandler
	Login            commands.LoginCommandHandler
	Logout           commands.LogoutCommandHandler
	ReviewIdentity   commands.ReviewIdentityCommandHandler
	RemoveIdentity   commands.RemoveIdentityCommandHandler
	SubmitListing    commands.SubmitListingCommandHandler
	ReviewListing    commands.ReviewListingCommandHandler

	GetAccess      queries.GetAccessQueryHandler
	ListIdentities queries.ListIdentitiesQueryHandler
	ListListings   queries.ListListingsQueryHandler
}

// Server implements the /api/v1 endpoints. It coordinates between HTTP
// handlers and application use cases; access checks run as route middleware
// before any handler.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
	}
}

// Register mounts the API on e. validator may be nil.
func (s *Server) Register(e *echo.Echo, validator echo.MiddlewareFunc) {
	middlewares := []echo.MiddlewareFunc{ResolveAccess(s.handlers.GetAccess)}
	if validator != nil {
		middlewares = append([]echo.MiddlewareFunc{validator}, middlewares...)
	}
	api := e.Group("/api/v1", middlewares...)

	api.POST("/identities", s.RegisterIdentity)
	api.GET("/identities", s.ListIdentities, requireAdmin)
	api.GET("/identities/removed", s.ListRemovedIdentities, requireAdmin)
	api.POST("/identities/:id/approve", s.ApproveIdentity, requireAdmin)
	api.POST("/identities/:id/reject", s.RejectIdentity, requireAdmin)
	api.POST("/identities/:id/restore", s.RestoreIdentity, requireAdmin)
	api.POST("/identities/:id/reinstate", s.ReinstateIdentity, requireAdmin)
	api.DELETE("/identities/:id", s.RemoveIdentity, requireAdmin)

	api.POST("/sessions", s.Login)
	api.GET("/sessions/current", s.GetCurrentSession)
	api.DELETE("/sessions/current", s.Logout, requireAuthenticated)

	api.POST("/listings", s.SubmitListing, requireListingSubmitter)
	api.GET("/listings", s.ListListings, requireAuthenticated)
	api.POST("/listings/:id/approve", s.ApproveListing, requireAdmin)
	api.POST("/listings/:id/reject", s.RejectListing, requireAdmin)
	api.DELETE("/listings/:id", s.RemoveListing, requireAuthenticated)
}

// pathID binds the :id path parameter.
func pathID(c echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromString(id.String())
}

// queryParam binds an optional query parameter. An absent parameter leaves
// the result empty.
func queryParam(c echo.Context, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
		}
		return err
	}
	return nil
}
