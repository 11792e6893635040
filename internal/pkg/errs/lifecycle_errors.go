package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentity is the sentinel for DuplicateIdentityError.
	ErrDuplicateIdentity = errors.New("identity already exists")
	// ErrNotAuthorized is the sentinel for NotAuthorizedError.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrAccountRejected is the sentinel for AccountRejectedError.
	ErrAccountRejected = errors.New("account is rejected")
	// ErrInvalidTransition is the sentinel for InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid transition")
)

// DuplicateIdentityError reports a registration or reinstatement that would give
// two active identities the same e-mail address.
type DuplicateIdentityError struct {
	Email string
}

// NewDuplicateIdentityError creates a DuplicateIdentityError for the address.
func NewDuplicateIdentityError(email string) *DuplicateIdentityError {
	return &DuplicateIdentityError{Email: email}
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateIdentity, e.Email)
}

func (e *DuplicateIdentityError) Unwrap() error {
	return ErrDuplicateIdentity
}

// NotAuthorizedError reports an actor that may not perform the requested action.
type NotAuthorizedError struct {
	Reason string
}

// NewNotAuthorizedError creates a NotAuthorizedError with a short reason.
// The reason is safe to show to the caller and must not leak credentials.
func NewNotAuthorizedError(reason string) *NotAuthorizedError {
	return &NotAuthorizedError{Reason: reason}
}

func (e *NotAuthorizedError) Error() string {
	if e.Reason == "" {
		return ErrNotAuthorized.Error()
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthorized, e.Reason)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// AccountRejectedError reports a login by an identity whose approval was rejected.
type AccountRejectedError struct {
	ID any
}

// NewAccountRejectedError creates an AccountRejectedError for the identity ID.
func NewAccountRejectedError(id any) *AccountRejectedError {
	return &AccountRejectedError{ID: id}
}

func (e *AccountRejectedError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAccountRejected, e.ID)
}

func (e *AccountRejectedError) Unwrap() error {
	return ErrAccountRejected
}

// InvalidTransitionError reports an operation the state machine does not allow
// from the entity's current state.
type InvalidTransitionError struct {
	Entity string
	From   string
	Action string
}

// NewInvalidTransitionError creates an InvalidTransitionError.
//
// Example:
//
//	errs.NewInvalidTransitionError("listing", "Approved", "reject")
//	// invalid transition: cannot reject listing in Approved state
func NewInvalidTransitionError(entity, from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Entity: entity,
		From:   from,
		Action: action,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in %s state", ErrInvalidTransition, e.Action, e.Entity, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
