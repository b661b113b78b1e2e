// Package errs provides standardized error types for the ordering workflow.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is malformed
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - ObjectAlreadyExistsError: For unique-key collisions such as a taken login
//   - ConflictError: For state that forbids the change or a lost concurrent race
//   - AccessDeniedError: For authenticated callers lacking role or ownership
//   - AuthenticationFailedError: For bad credentials or a missing identity
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details and an optional Cause
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() []error returning the sentinel and the cause
//
// Because both the sentinel and the cause are in the chain, callers can test
// for the category (errors.Is(err, errs.ErrObjectNotFound)) or for the named
// domain error passed as cause (errors.Is(err, catalog.ErrItemNotFound)).
// KindOf folds any error into the caller-facing taxonomy.
package errs
