// Package errs provides the typed errors shared by the order desk.
//
// Each error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrInvalidTransition) with a struct
// carrying the details. Constructors exist with and without a cause, and Unwrap
// always returns the sentinel so adapters can map failures to stable codes with
// errors.Is:
//
//   - ObjectNotFoundError: an order or agent id did not resolve
//   - InvalidTransitionError: a lifecycle precondition failed (expected vs actual state)
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: bad input
package errs
