package queries

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// GetAccessQueryHandler turns a session token into services.Access. The
// identity is read from the active collection on every call, so removal and
// status changes take effect on the next request.
type GetAccessQueryHandler struct {
	sessions   ports.SessionStore
	uowFactory ports.UnitOfWorkFactory
	gate       services.AccessGate
}

func NewGetAccessQueryHandler(
	sessions ports.SessionStore,
	uowFactory ports.UnitOfWorkFactory,
	gate services.AccessGate,
) GetAccessQueryHandler {
	return GetAccessQueryHandler{
		sessions:   sessions,
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle returns anonymous access for an empty, unknown or expired token and for
// a session whose identity is no longer active.
func (h GetAccessQueryHandler) Handle(ctx context.Context, query GetAccessQuery) (services.Access, error) {
	if err := query.Validate(); err != nil {
		return services.Access{}, err
	}
	if query.Token() == "" {
		return h.gate.Evaluate(nil), nil
	}

	session, err := h.sessions.Get(ctx, query.Token())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return h.gate.Evaluate(nil), nil
	}
	if err != nil {
		return services.Access{}, err
	}

	current, err := h.uowFactory.Create().IdentityRepository().Get(ctx, session.IdentityID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return h.gate.Evaluate(nil), nil
	}
	if err != nil {
		return services.Access{}, err
	}

	return h.gate.Evaluate(current), nil
}
