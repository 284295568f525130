// Package errs provides the standardized error types used across the service.
// It implements a consistent pattern for error creation, formatting, and unwrapping.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) matched with errors.Is
//   - A struct type carrying error details
//   - Constructor functions with and without a cause
//   - Error() and Unwrap() methods
//
// The sentinels also form the per-request error taxonomy of the order engine:
// ErrObjectNotFound, ErrForbidden and ErrConflict are mapped by the HTTP
// adapter onto 404, 403 and 409 responses. Value errors (ErrValueIsRequired,
// ErrValueIsInvalid) signal malformed input and map onto 400.
package errs
