package commands

import (
	"context"

	"loadboard/internal/core/ports"
)

type LogoutCommandHandler struct {
	sessions ports.SessionStore
}

func NewLogoutCommandHandler(sessions ports.SessionStore) LogoutCommandHandler {
	return LogoutCommandHandler{sessions: sessions}
}

// Handle deletes the session. Logging out twice is not an error.
func (h LogoutCommandHandler) Handle(ctx context.Context, command LogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return h.sessions.Delete(ctx, command.Token())
}
