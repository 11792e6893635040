package identity

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
)

// Status is the approval state of an identity.
//
// State transitions:
//
//	Pending  ──> Approved  (approve, restore)
//	Pending  ──> Rejected  (reject)
//	Approved ──> Approved  (approve, refreshes the approval date)
//	Approved ──> Rejected  (reject)
//	Approved ──> Pending   (restore)
//	Rejected ──> Pending   (restore)
//	Rejected ──> Approved  (approve, restore)
//	Rejected ──> Rejected  (reject, refreshes the rejection date)
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	UnknownStatus Status = iota

	// Pending is the status of a freshly registered shipper or carrier.
	Pending

	// Approved identities may use the marketplace.
	Approved

	// Rejected identities may not log in until an administrator restores them.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Approved:      "approved",
		Rejected:      "rejected",
	}
}

// ParseStatus converts the persisted or transport form of a status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != UnknownStatus && str == normalized {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is Pending, Approved or Rejected.
func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name used in storage and on the wire.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions any valid status to Approved.
func (s Status) Approve() (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, errs.NewInvalidTransitionError("identity", s.String(), "approve")
	}
	return Approved, nil
}

// Reject transitions any valid status to Rejected.
func (s Status) Reject() (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, errs.NewInvalidTransitionError("identity", s.String(), "reject")
	}
	return Rejected, nil
}

// Restore moves s to target. Only Pending and Approved are restore targets and
// the target must differ from the current status.
//
// Example:
//
//	next, err := identity.Rejected.Restore(identity.Pending) // Pending, nil
//	_, err = identity.Approved.Restore(identity.Approved)    // InvalidTransitionError
func (s Status) Restore(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, errs.NewInvalidTransitionError("identity", s.String(), "restore")
	}
	if (target != Pending && target != Approved) || target == s {
		return UnknownStatus, errs.NewInvalidTransitionError("identity", s.String(), "restore to "+target.String())
	}
	return target, nil
}

// Verification records whether the e-mail address was confirmed. Registration
// confirms immediately, so every identity created here is Verified.
type Verification int

const (
	UnknownVerification Verification = iota
	Unverified
	Verified
)

// ParseVerification converts the persisted form of a verification status.
func ParseVerification(s string) (Verification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unverified":
		return Unverified, nil
	case "verified":
		return Verified, nil
	default:
		return UnknownVerification, errs.NewValueIsInvalidErrorWithCause(
			"verification", fmt.Errorf("%q is not a valid verification status", s))
	}
}

func (v Verification) String() string {
	switch v {
	case Unverified:
		return "unverified"
	case Verified:
		return "verified"
	default:
		return "unknown"
	}
}
