// Package errs provides standardized error types for the inventory application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its permitted bounds
//   - ObjectNotFoundError: For when an object cannot be found (or belongs to another business)
//   - AlreadyExistsError: For uniqueness conflicts such as an email already in use
//   - ForbiddenError: For authenticated callers lacking privilege or ownership
//   - UnauthenticatedError: For missing, invalid or rejected credentials and sessions
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter classifies failures with errors.Is against the sentinels, so every
// layer may wrap freely with fmt.Errorf("...: %w", err) without losing the error kind.
package errs
