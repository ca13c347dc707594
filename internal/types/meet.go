package types

import "errors"

// ErrIncompatibleMeet is returned by TypeMeet when a and b have no
// common lower bound; the caller reports the incompatibility.
var ErrIncompatibleMeet = errors.New("types: incompatible meet")

// TypeMeet computes the greatest lower bound of a and b: equal types
// meet to themselves, Any meets to the other, otherwise the caller
// reports incompatibility.
func TypeMeet(a, b Type) (Type, error) {
	if _, ok := a.(*AnyType); ok {
		return b, nil
	}
	if _, ok := b.(*AnyType); ok {
		return a, nil
	}
	if IsSameType(a, b) {
		return a, nil
	}
	return nil, ErrIncompatibleMeet
}

// ContextualMeet is TypeMeet with an optional left-hand side: when
// general is nil, the specific type is returned as-is (used by the
// checker when there may or may not be an outer hint in scope).
func ContextualMeet(general *Type, specific Type) Type {
	if general == nil {
		return specific
	}
	m, err := TypeMeet(*general, specific)
	if err != nil {
		return specific
	}
	return m
}
