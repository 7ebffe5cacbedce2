// Package errs provides standardized error types for the reporting application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing (caller bug, never retried)
//   - ValueIsInvalidError: a value is present but malformed
//   - ObjectNotFoundError: a lookup matched nothing
//   - DataSourceError: the backing store could not serve a request
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is works against the sentinel
//
// Stage-specific errors of the report pipeline (directory inconsistency,
// delivery failure) live next to the services that raise them and follow
// the same sentinel + struct pattern.
package errs
