package listing

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
)

// Status is the review state of a listing.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Approved
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

func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions Pending to Approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return UnknownStatus, errs.NewInvalidTransitionError("listing", s.String(), "approve")
	}
	return Approved, nil
}

// Reject transitions Pending to Rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return UnknownStatus, errs.NewInvalidTransitionError("listing", s.String(), "reject")
	}
	return Rejected, nil
}
