package commands

import (
	"errors"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand opens a session for an address.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email         kernel.Email
	credential    string
	requestedRole identity.Role

	guard guard.ConstructorGuard
}

// NewLoginCommand validates the login input. The credential may be empty for
// identities registered without a password.
func NewLoginCommand(email string, credential string, requestedRole identity.Role) (LoginCommand, error) {
	cmd := LoginCommand{
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setRequestedRole(requestedRole),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() kernel.Email {
	return c.email
}

func (c LoginCommand) Credential() string {
	return c.credential
}

func (c LoginCommand) RequestedRole() identity.Role {
	return c.requestedRole
}

func (c *LoginCommand) setEmail(raw string) error {
	email, err := kernel.NewEmail(raw)
	if err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *LoginCommand) setRequestedRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.requestedRole = role
	return nil
}
