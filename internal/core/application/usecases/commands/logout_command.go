package commands

import (
	"errors"
	"strings"

	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand ends one session. The identity record is not touched.
type LogoutCommand struct {
	token string
	guard guard.ConstructorGuard
}

func NewLogoutCommand(token string) (LogoutCommand, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("session token")
	}
	return LogoutCommand{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Token() string {
	return c.token
}
