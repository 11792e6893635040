// Package guard provides ConstructorGuard, a marker embedded in commands, queries
// and aggregates so that a zero value can be told apart from a value produced by
// its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example usage:
//
//	var ErrApproveListingCommandIsNotConstructed = errors.New("...")
//
//	type ApproveListingCommand struct {
//	    listingID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c ApproveListingCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveListingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from
// constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
