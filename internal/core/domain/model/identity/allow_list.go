package identity

import (
	"errors"
	"fmt"
	"strings"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"
)

// AdminAllowList is the fixed set of addresses that always hold the Admin role.
// It is configured at start-up and never changes while the service runs.
type AdminAllowList struct {
	emails map[string]struct{}
}

// NewAdminAllowList parses raw addresses. Blank entries are skipped; a malformed
// entry fails the whole list.
func NewAdminAllowList(raw []string) (AdminAllowList, error) {
	list := AdminAllowList{emails: make(map[string]struct{}, len(raw))}
	var errList []error
	for _, entry := range raw {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		email, err := kernel.NewEmail(entry)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		list.emails[email.String()] = struct{}{}
	}
	if err := errors.Join(errList...); err != nil {
		return AdminAllowList{}, err
	}
	return list, nil
}

// Contains reports whether email is allow-listed.
func (l AdminAllowList) Contains(email kernel.Email) bool {
	_, ok := l.emails[email.String()]
	return ok
}

// Len returns the number of allow-listed addresses.
func (l AdminAllowList) Len() int {
	return len(l.emails)
}

// ResolveRole picks the role a registrant ends up with. Allow-listed addresses
// are always Admin whatever they asked for; anybody else asking for Admin is
// refused.
func (l AdminAllowList) ResolveRole(email kernel.Email, requested Role) (Role, error) {
	if l.Contains(email) {
		return Admin, nil
	}
	if requested == Admin {
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%s is not on the admin allow-list", email))
	}
	if err := requested.Validate(); err != nil {
		return UnknownRole, err
	}
	return requested, nil
}

// Normalize promotes i to an approved Admin when its address is allow-listed or
// it already holds the Admin role. It reports whether i changed.
func (l AdminAllowList) Normalize(i *Identity) bool {
	if i == nil {
		return false
	}
	if !l.Contains(i.email) && i.role != Admin {
		return false
	}
	return i.promoteToAdmin()
}
