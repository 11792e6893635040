package commands

import (
	"errors"
	"strings"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrRegisterIdentityCommandIsNotConstructed = errors.New(
	"RegisterIdentityCommand must be created via NewRegisterIdentityCommand constructor",
)

// RegisterIdentityCommand is a self-service registration. Repeating it for an
// address that is still pending replaces the pending details.
//
// Example:
//
//	cmd, err := NewRegisterIdentityCommand("shipper@x.com", "Alice", identity.Shipper,
//	    identity.ShipperProfile{BusinessName: "Acme"}, "")
//	if err != nil {
//	    return err
//	}
//	registered, err := handler.Handle(ctx, cmd)
type RegisterIdentityCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	name     string
	role     identity.Role
	profile  identity.Profile
	password string

	guard guard.ConstructorGuard
}

// NewRegisterIdentityCommand validates the registration input. The password is
// optional; when given it is checked at every later login.
func NewRegisterIdentityCommand(
	email string,
	name string,
	role identity.Role,
	profile identity.Profile,
	password string,
) (RegisterIdentityCommand, error) {
	cmd := RegisterIdentityCommand{
		profile:  profile,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return RegisterIdentityCommand{}, err
	}

	return cmd, nil
}

func (c RegisterIdentityCommand) Validate() error {
	return c.guard.Validate(ErrRegisterIdentityCommandIsNotConstructed)
}

func (c RegisterIdentityCommand) Email() kernel.Email {
	return c.email
}

func (c RegisterIdentityCommand) Name() string {
	return c.name
}

// Role returns the role the registrant asked for. The allow-list may override it.
func (c RegisterIdentityCommand) Role() identity.Role {
	return c.role
}

func (c RegisterIdentityCommand) Profile() identity.Profile {
	return c.profile
}

func (c RegisterIdentityCommand) Password() string {
	return c.password
}

func (c *RegisterIdentityCommand) setEmail(raw string) error {
	email, err := kernel.NewEmail(raw)
	if err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *RegisterIdentityCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterIdentityCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
