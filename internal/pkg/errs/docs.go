// Package errs provides the standardized error types used across the service.
//
// Each error kind follows the same pattern: a sentinel error variable for
// errors.Is checks, a struct type carrying the error details, constructor
// functions with and without a cause, an Error() method for formatting and
// an Unwrap() method pointing at the sentinel.
//
// The kinds cover the full error taxonomy of the marketplace core:
//   - ValueIsRequiredError / ValueIsInvalidError: domain validation failures
//   - ValueIsOutOfRangeError: numeric bounds breaches (e.g. coordinates)
//   - ObjectNotFoundError: referenced entity absent from storage
//   - UnauthorizedError: role or policy check failures
//   - ConstraintViolationError: uniqueness/foreign-key/check breaches
//     surfaced by the storage layer
package errs
