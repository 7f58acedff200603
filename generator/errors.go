package generator

import "errors"

// Sentinel errors for the generator package.
var (
	// ErrInvalidGridOptions indicates a GridOptions field was out of range
	// (non-positive column/row count, negative channel point count, etc).
	ErrInvalidGridOptions = errors.New("generator: invalid grid options")

	// ErrGenerationFailed indicates CreateProblem exhausted its attempt
	// budget without reaching the requested crossing count. Surfaced only
	// to the generator's own caller; the router engine never observes it.
	ErrGenerationFailed = errors.New("generator: could not reach target crossing count")
)
