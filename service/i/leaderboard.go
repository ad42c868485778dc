package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
)

// Leaderboard ranks solvers by their mean efficiency over solved mazes.
type Leaderboard interface {
	// RecordScore folds one solved attempt's efficiency into the solver's
	// running mean.
	RecordScore(ctx context.Context, solver string, efficiency float64) error

	// Top returns up to n solvers ordered by mean efficiency descending.
	Top(ctx context.Context, n int64) ([]dmn.Score, error)
}
