package tree

import "errors"

// Domain errors for growth operations.
var (
	// ErrAlreadySprouted indicates Sprout was called on a non-empty tree.
	ErrAlreadySprouted = errors.New("tree: already sprouted")

	// ErrLifeBounds indicates a starting life outside [MinLife, MaxLife].
	ErrLifeBounds = errors.New("tree: life out of valid bounds")

	// ErrMultiplierBounds indicates a multiplier outside [MinMultiplier, MaxMultiplier].
	ErrMultiplierBounds = errors.New("tree: multiplier out of valid bounds")

	// ErrViewportBounds indicates a non-positive viewport dimension.
	ErrViewportBounds = errors.New("tree: viewport dimensions must be positive")
)
