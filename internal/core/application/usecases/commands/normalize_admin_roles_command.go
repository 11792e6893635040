package commands

import (
	"errors"

	"loadboard/internal/pkg/guard"
)

var ErrNormalizeAdminRolesCommandIsNotConstructed = errors.New(
	"NormalizeAdminRolesCommand must be created via NewNormalizeAdminRolesCommand constructor",
)

// NormalizeAdminRolesCommand writes the admin allow-list normalization back to
// storage for every active identity. Reads already normalize; the sweep keeps
// the stored rows in line with what readers see.
type NormalizeAdminRolesCommand struct {
	guard guard.ConstructorGuard
}

func NewNormalizeAdminRolesCommand() NormalizeAdminRolesCommand {
	return NormalizeAdminRolesCommand{guard: guard.NewConstructorGuard()}
}

func (c NormalizeAdminRolesCommand) Validate() error {
	return c.guard.Validate(ErrNormalizeAdminRolesCommandIsNotConstructed)
}
