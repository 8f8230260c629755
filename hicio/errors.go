package hicio

import "errors"

// Sentinel errors for package hicio, checked with errors.Is.
var (
	// ErrInvalidResolution indicates res <= 0.
	ErrInvalidResolution = errors.New("hicio: resolution must be > 0")

	// ErrInvalidDistanceRange indicates minBinDist > maxBinDist, or either
	// is negative.
	ErrInvalidDistanceRange = errors.New("hicio: invalid bin-distance range")

	// ErrMalformedRecord indicates a RAWobserved line did not parse as
	// "i\tj\tvalue".
	ErrMalformedRecord = errors.New("hicio: malformed raw contact record")
)
