package chain

import "errors"

// Domain errors for parameter validation. Generate itself never returns
// errors: it is a total function on float inputs, and out-of-domain values
// produce non-finite points rather than failures.
var (
	// ErrChainLength indicates a chain length below one bead.
	ErrChainLength = errors.New("chain: length must be at least 1")

	// ErrPersistenceLength indicates a non-positive persistence length.
	ErrPersistenceLength = errors.New("chain: persistence length must be positive")

	// ErrTemperature indicates a non-positive temperature.
	ErrTemperature = errors.New("chain: temperature must be positive")

	// ErrBendingRigidity indicates a zero bending rigidity.
	ErrBendingRigidity = errors.New("chain: bending rigidity must be non-zero")

	// ErrNoiseLevel indicates a negative noise level.
	ErrNoiseLevel = errors.New("chain: noise level must be non-negative")

	// ErrUnknownParam indicates an edit addressed to no known parameter.
	ErrUnknownParam = errors.New("chain: unknown parameter")
)
