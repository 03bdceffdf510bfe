package indexedsumtree

import (
	"errors"
	"fmt"
)

// Sentinel errors, matching the core's error kinds (OutOfRange, EmptyTree).
// Operations wrap these with fmt.Errorf so callers can errors.Is against
// the sentinel while still seeing an operation-specific message.
var (
	ErrOutOfRange  = errors.New("indexedsumtree: position out of range")
	ErrEmptyTree   = errors.New("indexedsumtree: tree is empty")
	ErrStaleCursor = errors.New("indexedsumtree: cursor invalidated by a mutation")
)

func errOutOfRange(pos, size int) error {
	return fmt.Errorf("indexedsumtree: position %d out of range for size %d: %w", pos, size, ErrOutOfRange)
}

func errInvalidRange(l, r, size int) error {
	return fmt.Errorf("indexedsumtree: range [%d,%d] invalid for size %d: %w", l, r, size, ErrOutOfRange)
}
