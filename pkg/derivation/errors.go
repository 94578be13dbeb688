package derivation

import (
	"errors"
	"fmt"
)

var (
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")
	// ErrMalformedDerivationPath is thrown when the path does not have exactly
	// a root marker followed by five components
	ErrMalformedDerivationPath = errors.New("derivation path must have 6 segments")
	// ErrMissingRootMarker ...
	ErrMissingRootMarker = errors.New("derivation path must start with the root marker 'm'")
	// ErrComponentNotHardened ...
	ErrComponentNotHardened = errors.New("component must be hardened")
	// ErrInvalidComponent ...
	ErrInvalidComponent = errors.New("component must be a non-negative integer")
	// ErrComponentOutOfRange ...
	ErrComponentOutOfRange = errors.New("component exceeds the hardened index range")
)

// PathError reports which component of a derivation path failed validation.
type PathError struct {
	Component string
	Err       error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid %s component: %v", e.Component, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
