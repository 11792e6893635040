package commands

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// RemoveIdentityCommandHandler relocates identities between the active and the
// removed collection. Within the transaction the destination is always written
// before the source is deleted.
type RemoveIdentityCommandHandler struct {
	uowFactory IdentityUoWFactory
	sessions   ports.SessionStore
	allowList  identity.AdminAllowList
	clock      kernel.Clock
}

func NewRemoveIdentityCommandHandler(
	uowFactory IdentityUoWFactory,
	sessions ports.SessionStore,
	allowList identity.AdminAllowList,
	clock kernel.Clock,
) RemoveIdentityCommandHandler {
	return RemoveIdentityCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		allowList:  allowList,
		clock:      clock,
	}
}

// Remove stamps the removal date, moves the identity to the removed collection
// and, once that is committed, ends every session it holds. An id that is not
// active is an ObjectNotFoundError.
func (h RemoveIdentityCommandHandler) Remove(ctx context.Context, command RemoveIdentityCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active := uow.IdentityRepository()
	removed := uow.RemovedIdentityRepository()

	target, err := active.Get(ctx, command.IdentityID())
	if err != nil {
		return err
	}

	if err = target.MarkRemoved(h.clock.Now()); err != nil {
		return err
	}

	if err = removed.Add(ctx, target); err != nil {
		return err
	}

	if err = active.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Sessions left behind resolve to anonymous once the identity is gone.
	_, _ = h.sessions.DeleteByIdentity(ctx, target.ID())
	return nil
}

// Reinstate moves a removed identity back to the active collection. The approval
// status it had when removed is kept and the admin allow-list is applied. A
// missing id is an ObjectNotFoundError; an address now owned by another active
// identity is a DuplicateIdentityError. Sessions are not restored.
func (h RemoveIdentityCommandHandler) Reinstate(
	ctx context.Context,
	command ReinstateIdentityCommand,
) (*identity.Identity, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active := uow.IdentityRepository()
	removed := uow.RemovedIdentityRepository()

	target, err := removed.Get(ctx, command.IdentityID())
	if err != nil {
		return nil, err
	}

	_, err = active.FindByEmail(ctx, target.Email())
	if err == nil {
		return nil, errs.NewDuplicateIdentityError(target.Email().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = target.Reinstate(); err != nil {
		return nil, err
	}
	h.allowList.Normalize(target)

	if err = active.Add(ctx, target); err != nil {
		return nil, err
	}

	if err = removed.Delete(ctx, target.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
