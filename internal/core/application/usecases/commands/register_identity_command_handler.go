package commands

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/errs"
)

// RegisterIdentityCommandHandler creates a pending identity, or refreshes the
// one still pending under the same address.
//
// Example:
//
//	handler := NewRegisterIdentityCommandHandler(uowFactory, allowList, creds, clock, sink)
//	registered, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrDuplicateIdentity) {
//	    // the address already has a reviewed account
//	}
type RegisterIdentityCommandHandler struct {
	uowFactory  IdentityUoWFactory
	allowList   identity.AdminAllowList
	credentials services.Credentials
	clock       kernel.Clock
	sink        ports.NotificationSink
}

func NewRegisterIdentityCommandHandler(
	uowFactory IdentityUoWFactory,
	allowList identity.AdminAllowList,
	credentials services.Credentials,
	clock kernel.Clock,
	sink ports.NotificationSink,
) RegisterIdentityCommandHandler {
	return RegisterIdentityCommandHandler{
		uowFactory:  uowFactory,
		allowList:   allowList,
		credentials: credentials,
		clock:       clock,
		sink:        sink,
	}
}

// Handle registers the identity and returns the persisted snapshot.
//
// The role is resolved against the allow-list first: allow-listed addresses
// become approved admins, anybody else asking for admin gets a
// ValueIsInvalidError. An active identity with the same address that is no
// longer pending is a DuplicateIdentityError. A pending identity registered
// with a password is only updated when the same password is given again; its
// credential is never replaced.
func (h RegisterIdentityCommandHandler) Handle(
	ctx context.Context,
	command RegisterIdentityCommand,
) (*identity.Identity, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	role, err := h.allowList.ResolveRole(command.Email(), command.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.IdentityRepository()
	now := h.clock.Now()

	registered, err := repo.FindByEmail(ctx, command.Email())
	switch {
	case err == nil:
		if err = h.checkResubmission(registered, command); err != nil {
			return nil, err
		}
		if err = registered.Resubmit(command.Name(), role, command.Profile(), now); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, registered); err != nil {
			return nil, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		var credentialHash string
		if credentialHash, err = h.credentials.Hash(command.Password()); err != nil {
			return nil, err
		}
		registered, err = identity.NewIdentity(
			kernel.NewUUID(),
			command.Email(),
			command.Name(),
			role,
			command.Profile(),
			credentialHash,
			now,
		)
		if err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, registered); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatch(ctx, h.sink, registered)
	return registered, nil
}

func (h RegisterIdentityCommandHandler) checkResubmission(
	registered *identity.Identity,
	command RegisterIdentityCommand,
) error {
	if registered.Status() != identity.Pending || registered.CredentialHash() == "" {
		return nil
	}
	return h.credentials.Check(registered.CredentialHash(), command.Password())
}
