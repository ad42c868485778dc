package maze

import (
	"errors"
	"fmt"
)

// Generation failures. All of them are recoverable: the caller retries the
// whole generation with fresh randomness, up to its own attempt limit.
var (
	// ErrNoSpine means Phase-1 backtracking exhausted the walk without
	// finding any route from start to goal.
	ErrNoSpine = errors.New("no spine found")

	// ErrSpineTooShort means the walk reached the goal but the spine did
	// not meet the minimum length derived from the tortuosity factor.
	ErrSpineTooShort = errors.New("spine shorter than tortuosity minimum")

	// ErrTooFewTurns means the walk reached the goal with fewer direction
	// changes than the configured minimum.
	ErrTooFewTurns = errors.New("spine has too few turns")

	// ErrIterationCap means the Phase-1 walk hit its safety iteration cap.
	ErrIterationCap = errors.New("spine walk iteration cap exceeded")
)

func errOutOfBounds(p Position, width, height int) error {
	return fmt.Errorf("position %v outside %dx%d grid", p, width, height)
}
