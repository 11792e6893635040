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

// LoginResult is the identity that logged in and its new session.
type LoginResult struct {
	Identity *identity.Identity
	Session  ports.Session
}

// LoginCommandHandler checks a login attempt, persists the possibly promoted
// identity and opens a session for it.
type LoginCommandHandler struct {
	uowFactory    IdentityUoWFactory
	sessions      ports.SessionStore
	allowList     identity.AdminAllowList
	credentials   services.Credentials
	adminPassword string
	clock         kernel.Clock
}

// NewLoginCommandHandler creates the handler. adminPasswordHash is the bcrypt
// hash every admin login is checked against.
func NewLoginCommandHandler(
	uowFactory IdentityUoWFactory,
	sessions ports.SessionStore,
	allowList identity.AdminAllowList,
	credentials services.Credentials,
	adminPasswordHash string,
	clock kernel.Clock,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory:    uowFactory,
		sessions:      sessions,
		allowList:     allowList,
		credentials:   credentials,
		adminPassword: adminPasswordHash,
		clock:         clock,
	}
}

// Handle logs the address in.
//
// Admin logins need an allow-listed address and the admin password, otherwise
// NotAuthorizedError. The admin identity is created on its first login.
//
// Other logins need an active identity (ObjectNotFoundError) that is not
// rejected (AccountRejectedError) and, when it registered a password, the
// matching credential (NotAuthorizedError). An allow-listed address is promoted
// to an approved admin, and then its credential must match either its own
// password or the admin password.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (LoginResult, error) {
	if err := command.Validate(); err != nil {
		return LoginResult{}, err
	}

	if command.RequestedRole() == identity.Admin {
		if err := h.checkAdmin(command); err != nil {
			return LoginResult{}, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.IdentityRepository()

	current, err := repo.FindByEmail(ctx, command.Email())
	switch {
	case err == nil:
		if err = h.checkExisting(command, current); err != nil {
			return LoginResult{}, err
		}
		h.allowList.Normalize(current)
		if err = repo.Update(ctx, current); err != nil {
			return LoginResult{}, err
		}
	case errors.Is(err, errs.ErrObjectNotFound) && command.RequestedRole() == identity.Admin:
		current, err = identity.NewIdentity(
			kernel.NewUUID(),
			command.Email(),
			command.Email().String(),
			identity.Admin,
			nil,
			"",
			h.clock.Now(),
		)
		if err != nil {
			return LoginResult{}, err
		}
		_ = current.PullNotifications()
		if err = repo.Add(ctx, current); err != nil {
			return LoginResult{}, err
		}
	default:
		return LoginResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	session, err := h.sessions.Create(ctx, current.ID())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Identity: current, Session: session}, nil
}

func (h LoginCommandHandler) checkAdmin(command LoginCommand) error {
	if !h.allowList.Contains(command.Email()) {
		return errs.NewNotAuthorizedError("address is not on the admin allow-list")
	}
	return h.credentials.Check(h.adminPassword, command.Credential())
}

func (h LoginCommandHandler) checkExisting(command LoginCommand, current *identity.Identity) error {
	if command.RequestedRole() == identity.Admin {
		return nil
	}
	if current.Status() == identity.Rejected {
		return errs.NewAccountRejectedError(current.ID())
	}

	if current.Role() == identity.Admin {
		if current.CredentialHash() != "" &&
			h.credentials.Check(current.CredentialHash(), command.Credential()) == nil {
			return nil
		}
		return h.credentials.Check(h.adminPassword, command.Credential())
	}

	if current.CredentialHash() != "" {
		return h.credentials.Check(current.CredentialHash(), command.Credential())
	}
	return nil
}
