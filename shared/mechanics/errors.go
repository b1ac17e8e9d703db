package mechanics

import "errors"

var (
	// ErrMassNotFound is returned when a connector refers to a mass id that
	// was not declared before it.
	ErrMassNotFound = errors.New("mass not found")

	// ErrDegenerateGeometry is returned for connectors that cannot span two
	// distinct masses.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNoMassInRange is returned when a drag starts with no mass to attach to.
	ErrNoMassInRange = errors.New("no mass in range")
)
