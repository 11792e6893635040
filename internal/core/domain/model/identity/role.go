package identity

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
)

// Role is the part an identity plays on the marketplace.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Shipper
	Carrier
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Shipper:     "shipper",
		Carrier:     "carrier",
		Admin:       "admin",
	}
}

// ParseRole converts the persisted or transport form of a role.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects UnknownRole and out of range values.
func (r Role) Validate() error {
	if r != Shipper && r != Carrier && r != Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
