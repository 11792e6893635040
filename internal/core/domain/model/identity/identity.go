package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/notification"
	"loadboard/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed is returned for an Identity that was not created by
// NewIdentity or RestoreIdentity.
var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is the aggregate root for a registered participant.
//
// Identity follows these invariants:
//   - id never changes, including across removal and reinstatement
//   - the profile, when present, matches the role (admins may keep any profile)
//   - registrationDate is always set
//   - every transition stamps only its own timestamp and clears those it supersedes
//
// Transitions take the current time as an argument and record the notifications
// they produce; the caller drains them with PullNotifications after persisting.
type Identity struct {
	id             kernel.UUID
	email          kernel.Email
	name           string
	role           Role
	status         Status
	verification   Verification
	profile        Profile
	credentialHash string

	registrationDate time.Time
	approvalDate     *time.Time
	rejectionDate    *time.Time
	restorationDate  *time.Time
	removedDate      *time.Time

	outbox        notification.Outbox
	isConstructed bool
}

// NewIdentity registers a new participant. The role must already be resolved
// against the allow-list (see AdminAllowList.ResolveRole). Shippers and carriers
// start Pending; admins start Approved with the registration time as their
// approval date. A registration-received notification is recorded either way.
//
// Example:
//
//	email, _ := kernel.NewEmail("shipper@x.com")
//	i, err := identity.NewIdentity(kernel.NewUUID(), email, "Alice", identity.Shipper,
//	    identity.ShipperProfile{BusinessName: "Acme"}, "", clock.Now())
func NewIdentity(
	id kernel.UUID,
	email kernel.Email,
	name string,
	role Role,
	profile Profile,
	credentialHash string,
	registeredAt time.Time,
) (*Identity, error) {
	i := &Identity{
		status:        Pending,
		verification:  Verified,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setEmail(email),
		i.setName(name),
		i.setRoleAndProfile(role, profile),
		i.setRegistrationDate(registeredAt),
	); err != nil {
		return nil, err
	}
	i.credentialHash = credentialHash

	if i.role == Admin {
		i.status = Approved
		i.approvalDate = timePtr(registeredAt)
	}

	i.record(notification.RegistrationReceived, nil)
	return i, nil
}

// Snapshot is the full persisted state of an identity. Storage adapters build
// one to call RestoreIdentity.
type Snapshot struct {
	ID               kernel.UUID
	Email            kernel.Email
	Name             string
	Role             Role
	Status           Status
	Verification     Verification
	Profile          Profile
	CredentialHash   string
	RegistrationDate time.Time
	ApprovalDate     *time.Time
	RejectionDate    *time.Time
	RestorationDate  *time.Time
	RemovedDate      *time.Time
}

// RestoreIdentity rebuilds an Identity from storage without recording any
// notification. Allow-list normalization is the caller's job.
func RestoreIdentity(s Snapshot) (*Identity, error) {
	i := &Identity{
		verification:    s.Verification,
		credentialHash:  s.CredentialHash,
		approvalDate:    copyTime(s.ApprovalDate),
		rejectionDate:   copyTime(s.RejectionDate),
		restorationDate: copyTime(s.RestorationDate),
		removedDate:     copyTime(s.RemovedDate),
		isConstructed:   true,
	}

	if err := errors.Join(
		i.setID(s.ID),
		i.setEmail(s.Email),
		i.setName(s.Name),
		i.setRoleAndProfile(s.Role, s.Profile),
		i.setStatus(s.Status),
		i.setRegistrationDate(s.RegistrationDate),
	); err != nil {
		return nil, err
	}
	if i.verification == UnknownVerification {
		i.verification = Verified
	}

	return i, nil
}

// Validate ensures the Identity was built by one of the constructors.
func (i *Identity) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIdentityIsNotConstructed
	}
	return nil
}

// IsEqual compares identities by id.
func (i *Identity) IsEqual(other *Identity) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the identity's unique identifier.
func (i *Identity) ID() kernel.UUID {
	return i.id
}

// Email returns the normalized address.
func (i *Identity) Email() kernel.Email {
	return i.email
}

func (i *Identity) Name() string {
	return i.name
}

func (i *Identity) Role() Role {
	return i.role
}

func (i *Identity) Status() Status {
	return i.status
}

func (i *Identity) Verification() Verification {
	return i.verification
}

// Profile returns the role specific details. Admins may have none.
func (i *Identity) Profile() Profile {
	return i.profile
}

// CredentialHash returns the bcrypt hash of the registrant's password, or "".
func (i *Identity) CredentialHash() string {
	return i.credentialHash
}

func (i *Identity) RegistrationDate() time.Time {
	return i.registrationDate
}

// ApprovalDate returns a copy of the approval date, or nil.
func (i *Identity) ApprovalDate() *time.Time {
	return copyTime(i.approvalDate)
}

func (i *Identity) RejectionDate() *time.Time {
	return copyTime(i.rejectionDate)
}

func (i *Identity) RestorationDate() *time.Time {
	return copyTime(i.restorationDate)
}

func (i *Identity) RemovedDate() *time.Time {
	return copyTime(i.removedDate)
}

// IsRemoved reports whether the identity currently sits in the removed collection.
func (i *Identity) IsRemoved() bool {
	return i.removedDate != nil
}

// Snapshot returns the persisted state of i.
func (i *Identity) Snapshot() Snapshot {
	return Snapshot{
		ID:               i.id,
		Email:            i.email,
		Name:             i.name,
		Role:             i.role,
		Status:           i.status,
		Verification:     i.verification,
		Profile:          i.profile,
		CredentialHash:   i.credentialHash,
		RegistrationDate: i.registrationDate,
		ApprovalDate:     copyTime(i.approvalDate),
		RejectionDate:    copyTime(i.rejectionDate),
		RestorationDate:  copyTime(i.restorationDate),
		RemovedDate:      copyTime(i.removedDate),
	}
}

// Resubmit applies a repeated registration to a still pending identity: the id
// and credential are kept while name, role, profile and registration date are
// replaced. Any other status is a DuplicateIdentityError.
func (i *Identity) Resubmit(
	name string,
	role Role,
	profile Profile,
	registeredAt time.Time,
) error {
	if i.status != Pending {
		return errs.NewDuplicateIdentityError(i.email.String())
	}

	next := *i
	next.outbox = notification.Outbox{}
	if err := errors.Join(
		next.setName(name),
		next.setRoleAndProfile(role, profile),
		next.setRegistrationDate(registeredAt),
	); err != nil {
		return err
	}
	if next.role == Admin {
		next.status = Approved
		next.approvalDate = timePtr(registeredAt)
	}

	outbox := i.outbox
	*i = next
	i.outbox = outbox
	i.record(notification.RegistrationReceived, nil)
	return nil
}

// Approve sets the status to Approved, stamps the approval date and clears the
// rejection date. Approving twice refreshes the approval date.
func (i *Identity) Approve(at time.Time) error {
	if err := i.ensureActive("approve"); err != nil {
		return err
	}
	next, err := i.status.Approve()
	if err != nil {
		return err
	}

	i.status = next
	i.approvalDate = timePtr(at)
	i.rejectionDate = nil
	i.record(notification.AccountApproved, nil)
	return nil
}

// Reject sets the status to Rejected and stamps the rejection date. The approval
// date is kept as history. Admins cannot be rejected.
func (i *Identity) Reject(at time.Time) error {
	if err := i.ensureActive("reject"); err != nil {
		return err
	}
	if i.role == Admin {
		return errs.NewInvalidTransitionError("admin identity", i.status.String(), "reject")
	}
	next, err := i.status.Reject()
	if err != nil {
		return err
	}

	i.status = next
	i.rejectionDate = timePtr(at)
	i.record(notification.AccountRejected, nil)
	return nil
}

// Restore moves the identity to target (Pending or Approved), stamps the
// restoration date and clears the rejection date. The approval date is set to at
// when restoring to Approved and cleared otherwise.
func (i *Identity) Restore(target Status, at time.Time) error {
	if err := i.ensureActive("restore"); err != nil {
		return err
	}
	if i.role == Admin && target == Pending {
		return errs.NewInvalidTransitionError("admin identity", i.status.String(), "restore to pending")
	}
	next, err := i.status.Restore(target)
	if err != nil {
		return err
	}

	i.status = next
	i.restorationDate = timePtr(at)
	i.rejectionDate = nil
	if next == Approved {
		i.approvalDate = timePtr(at)
	} else {
		i.approvalDate = nil
	}
	i.record(notification.AccountRestored, map[string]string{notification.KeyStatus: next.String()})
	return nil
}

// MarkRemoved stamps the removal date. The approval status is left as is.
func (i *Identity) MarkRemoved(at time.Time) error {
	if i.IsRemoved() {
		return errs.NewInvalidTransitionError("identity", "removed", "remove")
	}
	i.removedDate = timePtr(at)
	return nil
}

// Reinstate strips the removal date of a removed identity.
func (i *Identity) Reinstate() error {
	if !i.IsRemoved() {
		return errs.NewInvalidTransitionError("identity", "active", "reinstate")
	}
	i.removedDate = nil
	return nil
}

// PullNotifications returns and forgets the notifications recorded so far.
func (i *Identity) PullNotifications() []notification.Notification {
	return i.outbox.Drain()
}

// promoteToAdmin applies the admin normalization: Admin role, Approved status,
// no rejection date and an approval date that falls back to the registration
// date. It reports whether anything changed.
func (i *Identity) promoteToAdmin() bool {
	changed := i.role != Admin || i.status != Approved || i.rejectionDate != nil || i.approvalDate == nil

	i.role = Admin
	i.status = Approved
	i.rejectionDate = nil
	if i.approvalDate == nil {
		i.approvalDate = timePtr(i.registrationDate)
	}
	return changed
}

func (i *Identity) ensureActive(action string) error {
	if i.IsRemoved() {
		return errs.NewInvalidTransitionError("identity", "removed", action)
	}
	return nil
}

func (i *Identity) record(kind notification.Kind, context map[string]string) {
	ctx := map[string]string{notification.KeyName: i.name}
	for k, v := range context {
		ctx[k] = v
	}
	i.outbox.Record(notification.New(i.email, kind, ctx))
}

func (i *Identity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Identity) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	i.email = email
	return nil
}

func (i *Identity) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Identity) setRoleAndProfile(role Role, profile Profile) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role != Admin {
		if profile == nil {
			return errs.NewValueIsRequiredError(role.String() + " profile")
		}
		if profile.Role() != role {
			return errs.NewValueIsInvalidErrorWithCause("profile",
				fmt.Errorf("%s profile does not fit role %s", profile.Role(), role))
		}
	}
	i.role = role
	i.profile = profile
	return nil
}

func (i *Identity) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

func (i *Identity) setRegistrationDate(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("registration date")
	}
	i.registrationDate = at
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
