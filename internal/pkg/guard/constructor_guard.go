// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates and commands to tell constructor-built values from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
//
// Embed it as a private field and set it with NewConstructorGuard in the constructor:
//
//	type Customer struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c Customer) Validate() error {
//	    return c.guard.Validate(ErrCustomerIsNotConstructed)
//	}
//
// A zero-value struct carries a zero-value guard and therefore fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
