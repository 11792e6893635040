package notify

import (
	"context"
	"log/slog"
)

// LogTransport writes messages to the log instead of a broker. It is used when
// no broker URL is configured.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger.With("component", "notification_log")}
}

func (t *LogTransport) Send(ctx context.Context, msg Message) error {
	t.logger.InfoContext(ctx, "Notification",
		"routing_key", msg.RoutingKey(),
		"recipient", msg.Recipient,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
