package kernel

import (
	"errors"
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"
	"loadboard/internal/pkg/guard"
)

// ErrLocationIsNotConstructed indicates a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is a pickup or delivery point on a load posting. The marketplace
// works at city granularity; the state is an upper-cased region code.
//
// Example:
//
//	loc, err := kernel.NewLocation("Dallas", "tx")
//	fmt.Println(loc) // Dallas, TX
type Location struct { //nolint:recvcheck //using for validation
	city  string
	state string
	guard guard.ConstructorGuard
}

// NewLocation validates that both parts are present.
func NewLocation(city, state string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setCity(city), loc.setState(state)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// City returns the city name as entered.
func (l Location) City() string {
	return l.city
}

// State returns the upper-cased state or region code.
func (l Location) State() string {
	return l.state
}

// String formats the location as "City, ST".
func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.city, l.state)
}

// IsEqual compares city case-insensitively and state exactly.
func (l Location) IsEqual(other Location) bool {
	return strings.EqualFold(l.city, other.city) && l.state == other.state
}

// Validate returns ErrLocationIsNotConstructed for a zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	l.city = city
	return nil
}

func (l *Location) setState(state string) error {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	l.state = state
	return nil
}
