// Package notification describes the messages identity and listing transitions
// ask to send. Aggregates record them; command handlers hand them to the
// notification sink after the transition is committed.
package notification

import (
	"loadboard/internal/core/domain/model/kernel"
)

// Kind selects the template the sink renders.
type Kind string

const (
	RegistrationReceived Kind = "registration-received"
	AccountApproved      Kind = "account-approved"
	AccountRejected      Kind = "account-rejected"
	AccountRestored      Kind = "account-restored"
	ListingApproved      Kind = "listing-approved"
	ListingRejected      Kind = "listing-rejected"
)

// Kinds lists every kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		RegistrationReceived,
		AccountApproved,
		AccountRejected,
		AccountRestored,
		ListingApproved,
		ListingRejected,
	}
}

// Context keys understood by the templates.
const (
	KeyName      = "name"
	KeyStatus    = "status"
	KeyListingID = "listing_id"
	KeyRoute     = "route"
	KeyReason    = "reason"
)

// Notification is a request to tell Recipient about a transition.
type Notification struct {
	Recipient kernel.Email
	Kind      Kind
	Context   map[string]string
}

// New builds a Notification. A nil context is replaced by an empty map.
func New(recipient kernel.Email, kind Kind, context map[string]string) Notification {
	if context == nil {
		context = map[string]string{}
	}
	return Notification{
		Recipient: recipient,
		Kind:      kind,
		Context:   context,
	}
}

// Outbox collects the notifications produced by an aggregate's transitions until
// the handler drains it.
type Outbox struct {
	pending []Notification
}

// Record appends n.
func (o *Outbox) Record(n Notification) {
	o.pending = append(o.pending, n)
}

// Drain returns the recorded notifications in order and empties the outbox.
func (o *Outbox) Drain() []Notification {
	out := o.pending
	o.pending = nil
	return out
}

// Pending returns the recorded notifications without removing them.
func (o *Outbox) Pending() []Notification {
	return append([]Notification(nil), o.pending...)
}
