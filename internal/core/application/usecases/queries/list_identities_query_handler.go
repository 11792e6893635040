package queries

import (
	"context"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/ports"
)

// ListIdentitiesQueryHandler serves both identity listings. It reads through the
// repositories rather than raw SQL so the active identities come back with the
// admin allow-list applied.
type ListIdentitiesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListIdentitiesQueryHandler(uowFactory ports.UnitOfWorkFactory) ListIdentitiesQueryHandler {
	return ListIdentitiesQueryHandler{uowFactory: uowFactory}
}

// Handle returns the active identities with the query's status, oldest
// registration first.
func (h ListIdentitiesQueryHandler) Handle(ctx context.Context, query ListIdentitiesQuery) ([]IdentityView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.uowFactory.Create().IdentityRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]IdentityView, 0, len(all))
	for _, i := range all {
		if query.status != identity.UnknownStatus && i.Status() != query.status {
			continue
		}
		views = append(views, NewIdentityView(i))
	}
	return views, nil
}

// HandleRemoved returns the removed identities, most recently removed first.
func (h ListIdentitiesQueryHandler) HandleRemoved(
	ctx context.Context,
	query ListRemovedIdentitiesQuery,
) ([]IdentityView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.uowFactory.Create().RemovedIdentityRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]IdentityView, 0, len(all))
	for _, i := range all {
		views = append(views, NewIdentityView(i))
	}
	return views, nil
}
