package notify

import (
	"context"
	"log/slog"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/notification"
	"loadboard/internal/core/ports"
	"loadboard/internal/pkg/metrics"
)

var _ ports.NotificationSink = (*Sink)(nil)

// Sink implements ports.NotificationSink on top of a Transport.
type Sink struct {
	renderer  *Renderer
	transport Transport
	metrics   *metrics.Metrics
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewSink(
	renderer *Renderer,
	transport Transport,
	m *metrics.Metrics,
	clock kernel.Clock,
	logger *slog.Logger,
) *Sink {
	return &Sink{
		renderer:  renderer,
		transport: transport,
		metrics:   m,
		clock:     clock,
		logger:    logger.With("component", "notification_sink"),
	}
}

// Notify renders n and sends it. It does not report failure.
func (s *Sink) Notify(ctx context.Context, n notification.Notification) {
	subject, body, err := s.renderer.Render(n)
	if err != nil {
		s.fail(ctx, n, err)
		return
	}

	msg := newMessage(n, subject, body, s.clock.Now())
	if err = s.transport.Send(ctx, msg); err != nil {
		s.fail(ctx, n, err)
		return
	}

	s.metrics.IncrementNotification(string(n.Kind), metrics.OutcomeSent)
	s.logger.DebugContext(ctx, "Notification sent", "kind", n.Kind, "routing_key", msg.RoutingKey())
}

func (s *Sink) fail(ctx context.Context, n notification.Notification, err error) {
	s.metrics.IncrementNotification(string(n.Kind), metrics.OutcomeFailed)
	s.logger.ErrorContext(ctx, "Notification delivery failed", "kind", n.Kind, "error", err)
}
