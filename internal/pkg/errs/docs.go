// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the checkout subsystem:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input, rejected before any mutation
//   - ObjectNotFoundError: unknown order, product, or other referenced object
//   - NotAuthorizedError: wrong owner or insufficient role
//   - BusinessRuleError: a domain rule rejected the operation (empty cart,
//     insufficient stock, disallowed status transition)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrBusinessRuleViolated)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Nothing in this taxonomy is fatal to the process; handlers map these
// categories onto per-request HTTP status codes.
package errs
