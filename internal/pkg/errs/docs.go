// Package errs provides standardized error types for the loadboard application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of error types:
//   - Value errors raised while constructing commands and aggregates:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Lifecycle errors raised by identity and listing transitions:
//     ObjectNotFoundError, DuplicateIdentityError, NotAuthorizedError,
//     AccountRejectedError, InvalidTransitionError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// Transport adapters map the sentinels to status codes; the domain never panics
// on any of these conditions.
package errs
