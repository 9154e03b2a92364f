package generators

import "errors"

var (
	// ErrInvalidSelectorWidth is returned when a Geffe generator is given a
	// component count that is not a power of two greater than one.
	ErrInvalidSelectorWidth = errors.New("number of component registers must be a power of two greater than one")

	// ErrInvalidKey is returned for key material of the wrong length or content.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMissingRegister is returned when a nil register is passed to a constructor.
	ErrMissingRegister = errors.New("missing register")
)
