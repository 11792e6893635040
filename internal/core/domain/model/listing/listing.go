package listing

import (
	"errors"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/notification"
	"loadboard/internal/pkg/errs"
)

// ErrListingIsNotConstructed is returned for a Listing that was not created by
// NewListing or RestoreListing.
var ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")

// Owner is the shipper that posted a listing. Name and e-mail are copied onto the
// listing so it can be shown and notified about without loading the identity.
type Owner struct {
	ID    kernel.UUID
	Name  string
	Email kernel.Email
}

// Listing is the aggregate root for a freight posting.
//
// Listing follows these invariants:
//   - status starts Pending and changes at most once
//   - submissionDate never changes
//   - reviewedBy and approvalDate are set together by the review
//   - rejectionReason is only kept on rejected listings
type Listing struct {
	id              kernel.UUID
	owner           Owner
	freight         Freight
	status          Status
	submissionDate  time.Time
	approvalDate    *time.Time
	reviewedBy      *kernel.UUID
	rejectionReason string

	outbox        notification.Outbox
	isConstructed bool
}

// NewListing creates a Pending listing. Submitting records no notification.
func NewListing(id kernel.UUID, owner Owner, freight Freight, submittedAt time.Time) (*Listing, error) {
	l := &Listing{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOwner(owner),
		l.setFreight(freight),
		l.setSubmissionDate(submittedAt),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Snapshot is the full persisted state of a listing.
type Snapshot struct {
	ID              kernel.UUID
	Owner           Owner
	Freight         Freight
	Status          Status
	SubmissionDate  time.Time
	ApprovalDate    *time.Time
	ReviewedBy      *kernel.UUID
	RejectionReason string
}

// RestoreListing rebuilds a Listing from storage.
func RestoreListing(s Snapshot) (*Listing, error) {
	l := &Listing{
		approvalDate:    s.ApprovalDate,
		reviewedBy:      s.ReviewedBy,
		rejectionReason: s.RejectionReason,
		isConstructed:   true,
	}

	if err := errors.Join(
		l.setID(s.ID),
		l.setOwner(s.Owner),
		l.setFreight(s.Freight),
		l.setStatus(s.Status),
		l.setSubmissionDate(s.SubmissionDate),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

func (l *Listing) IsEqual(other *Listing) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Listing) ID() kernel.UUID           { return l.id }
func (l *Listing) Owner() Owner              { return l.owner }
func (l *Listing) Freight() Freight          { return l.freight }
func (l *Listing) Status() Status            { return l.status }
func (l *Listing) SubmissionDate() time.Time { return l.submissionDate }
func (l *Listing) RejectionReason() string   { return l.rejectionReason }

// ApprovalDate is the review time, set by both approval and rejection.
func (l *Listing) ApprovalDate() *time.Time {
	if l.approvalDate == nil {
		return nil
	}
	d := *l.approvalDate
	return &d
}

// ReviewedBy is the id of the admin that reviewed the listing, or nil.
func (l *Listing) ReviewedBy() *kernel.UUID {
	if l.reviewedBy == nil {
		return nil
	}
	id := *l.reviewedBy
	return &id
}

// Snapshot returns the persisted state of l.
func (l *Listing) Snapshot() Snapshot {
	return Snapshot{
		ID:              l.id,
		Owner:           l.owner,
		Freight:         l.freight,
		Status:          l.status,
		SubmissionDate:  l.submissionDate,
		ApprovalDate:    l.ApprovalDate(),
		ReviewedBy:      l.ReviewedBy(),
		RejectionReason: l.rejectionReason,
	}
}

// Approve marks a pending listing approved by adminID.
func (l *Listing) Approve(adminID kernel.UUID, at time.Time) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	next, err := l.status.Approve()
	if err != nil {
		return err
	}

	l.review(next, adminID, at)
	l.record(notification.ListingApproved, nil)
	return nil
}

// Reject marks a pending listing rejected by adminID. The reason is optional.
func (l *Listing) Reject(adminID kernel.UUID, reason string, at time.Time) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	next, err := l.status.Reject()
	if err != nil {
		return err
	}

	l.review(next, adminID, at)
	l.rejectionReason = strings.TrimSpace(reason)
	ctx := map[string]string{}
	if l.rejectionReason != "" {
		ctx[notification.KeyReason] = l.rejectionReason
	}
	l.record(notification.ListingRejected, ctx)
	return nil
}

// EnsureOwner returns NotAuthorizedError unless requesterID owns the listing.
func (l *Listing) EnsureOwner(requesterID kernel.UUID) error {
	if !l.owner.ID.IsEqual(requesterID) {
		return errs.NewNotAuthorizedError("only the owner may remove a listing")
	}
	return nil
}

// PullNotifications returns and forgets the notifications recorded so far.
func (l *Listing) PullNotifications() []notification.Notification {
	return l.outbox.Drain()
}

func (l *Listing) review(next Status, adminID kernel.UUID, at time.Time) {
	l.status = next
	l.approvalDate = &at
	l.reviewedBy = &adminID
}

func (l *Listing) record(kind notification.Kind, context map[string]string) {
	ctx := map[string]string{
		notification.KeyName:      l.owner.Name,
		notification.KeyListingID: l.id.String(),
		notification.KeyRoute:     l.freight.Route(),
	}
	for k, v := range context {
		ctx[k] = v
	}
	l.outbox.Record(notification.New(l.owner.Email, kind, ctx))
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setOwner(owner Owner) error {
	owner.Name = strings.TrimSpace(owner.Name)
	if err := errors.Join(owner.ID.Validate(), owner.Email.Validate()); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	if owner.Name == "" {
		return errs.NewValueIsRequiredError("owner name")
	}
	l.owner = owner
	return nil
}

func (l *Listing) setFreight(f Freight) error {
	if err := f.Validate(); err != nil {
		return err
	}
	l.freight = f
	return nil
}

func (l *Listing) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	l.status = s
	return nil
}

func (l *Listing) setSubmissionDate(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("submission date")
	}
	l.submissionDate = at
	return nil
}
