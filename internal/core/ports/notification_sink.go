package ports

import (
	"context"

	"loadboard/internal/core/domain/model/notification"
)

// NotificationSink accepts notifications after the transition that produced them
// was committed. It never reports failure to the caller; delivery problems are
// logged and counted by the implementation.
type NotificationSink interface {
	Notify(ctx context.Context, n notification.Notification)
}
