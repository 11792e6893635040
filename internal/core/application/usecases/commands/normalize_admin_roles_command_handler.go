package commands

import (
	"context"

	"loadboard/internal/core/domain/model/identity"
)

type NormalizeAdminRolesCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewNormalizeAdminRolesCommandHandler(uowFactory IdentityUoWFactory) NormalizeAdminRolesCommandHandler {
	return NormalizeAdminRolesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rewrites every admin identity and returns how many were written. The
// repository applies the allow-list to every identity it loads, so writing the
// admins back persists roles and statuses that were only corrected in memory.
func (h NormalizeAdminRolesCommandHandler) Handle(
	ctx context.Context,
	command NormalizeAdminRolesCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.IdentityRepository()

	all, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, i := range all {
		if i.Role() != identity.Admin {
			continue
		}
		if err = repo.Update(ctx, i); err != nil {
			return 0, err
		}
		written++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return written, nil
}
