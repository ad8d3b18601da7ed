package engine

import "errors"

var (
	// ErrBadCapacity indicates a non-positive address-space capacity.
	ErrBadCapacity = errors.New("engine: capacity must be positive")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("engine: allocation size must be positive")

	// ErrNoFit indicates that no free region could satisfy the request and
	// eviction was disabled or exhausted.
	ErrNoFit = errors.New("engine: no free region large enough")

	// ErrBadAddress indicates a deallocation target that is not the start of
	// an occupied region.
	ErrBadAddress = errors.New("engine: no occupied region at address")

	// ErrCorruptState indicates an imported partition that is not a gapless
	// decomposition of [0, capacity).
	ErrCorruptState = errors.New("engine: imported partition is not contiguous")

	// ErrBadRange indicates an invalid simulation size range.
	ErrBadRange = errors.New("engine: invalid simulation size range")
)
