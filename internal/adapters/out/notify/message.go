// Package notify delivers the notifications produced by identity and listing
// transitions. The Sink renders a message per kind and hands it to a Transport;
// failures are logged and counted and never reach the command that caused them.
package notify

import (
	"context"
	"time"

	"loadboard/internal/core/domain/model/notification"
)

// RoutingKeyPrefix prefixes the broker routing key of every message.
const RoutingKeyPrefix = "notification."

// Message is the rendered form of a notification as it leaves the service.
type Message struct {
	Recipient string            `json:"recipient"`
	Kind      string            `json:"kind"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body"`
	Context   map[string]string `json:"context"`
	CreatedAt time.Time         `json:"created_at"`
}

// RoutingKey returns the key the message is published under, for example
// "notification.account-approved".
func (m Message) RoutingKey() string {
	return RoutingKeyPrefix + m.Kind
}

// Transport moves a rendered message out of the process.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

func newMessage(n notification.Notification, subject, body string, at time.Time) Message {
	ctx := make(map[string]string, len(n.Context))
	for k, v := range n.Context {
		ctx[k] = v
	}
	return Message{
		Recipient: n.Recipient.String(),
		Kind:      string(n.Kind),
		Subject:   subject,
		Body:      body,
		Context:   ctx,
		CreatedAt: at,
	}
}
