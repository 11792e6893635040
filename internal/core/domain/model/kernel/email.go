package kernel

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"

	"github.com/asaskevich/govalidator"
)

// ErrEmailIsNotConstructed indicates a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

// Email is a normalized e-mail address: surrounding whitespace is removed and the
// whole address is lower-cased, so two Emails are equal exactly when the addresses
// match case-insensitively. Uniqueness of active identities and the admin
// allow-list both compare Emails.
type Email struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmail normalizes and validates raw.
//
// Example:
//
//	email, _ := kernel.NewEmail("  Shipper@X.com ")
//	email.String() // "shipper@x.com"
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !govalidator.IsEmail(normalized) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an e-mail address", normalized))
	}

	return Email{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two addresses case-insensitively.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate returns ErrEmailIsNotConstructed for a zero value.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
