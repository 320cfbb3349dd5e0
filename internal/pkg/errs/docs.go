// Package errs provides the error family shared by the freight coordinator.
//
// Each kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange,
//     ErrValueIsRequired, ErrInvalidTransition, ErrConflict)
//   - a struct carrying the details of the failure
//   - New...Error and New...ErrorWithCause constructors
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels, so a handler
// can wrap any of these with fmt.Errorf("...: %w", err) without losing the kind.
// The HTTP adapter maps the kinds onto response codes.
package errs
