// Package service wires the maze engine to the benchmark's persistence and
// scoring collaborators. Services depend on the interfaces in service/i
// only; concrete MongoDB and Redis implementations live under infrastruture.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/beka-birhanu/mazebench-api/config"
	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/beka-birhanu/mazebench-api/service/i"
	"github.com/google/uuid"
)

// MazeService generates benchmark mazes and freezes them for evaluation.
type MazeService struct {
	repo       i.MazeRepo
	logger     *log.Logger
	profileFor func(maze.Difficulty) config.GeneratorProfile
	seed       func() int64
}

// NewMazeService creates a MazeService. profileFor maps difficulties to
// generation profiles; config.ProfileFor is the production table.
func NewMazeService(repo i.MazeRepo, profileFor func(maze.Difficulty) config.GeneratorProfile, logger *log.Logger) (*MazeService, error) {
	if repo == nil || profileFor == nil || logger == nil {
		return nil, errors.New("maze service requires a repo, a profile table, and a logger")
	}
	return &MazeService{
		repo:       repo,
		logger:     logger,
		profileFor: profileFor,
		seed:       func() int64 { return time.Now().UnixNano() },
	}, nil
}

// Generate builds a maze at the given difficulty. Each attempt draws from
// an independently seeded random stream; failed attempts are retried up to
// the profile's limit, and the final failure is returned when the limit is
// exhausted. On success the grid is frozen together with its optimal path
// length and optional waypoint constraint, and persisted.
func (s *MazeService) Generate(ctx context.Context, difficulty maze.Difficulty) (*dmn.Maze, error) {
	profile := s.profileFor(difficulty)
	start := maze.Position{X: 0, Y: 0}
	goal := maze.Position{X: profile.Width - 1, Y: profile.Height - 1}

	attempts := max(1, profile.MaxAttempts)
	var grid *maze.Grid
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		rng := rand.New(rand.NewSource(s.seed()))
		if profile.UseSpine {
			grid, err = maze.GenerateSpine(profile.Width, profile.Height, start, goal, profile.Spine, rng)
		} else {
			grid, err = maze.GenerateDFS(profile.Width, profile.Height, start, rng)
		}
		if err == nil {
			break
		}
		s.logger.Printf("%s generation attempt %d/%d failed: %v", difficulty, attempt, attempts, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s generation exhausted %d attempts: %w", difficulty, attempts, err)
	}

	path, ok := maze.ShortestPath(grid, start, goal)
	if !ok {
		// The spine alone guarantees reachability; this is a generator
		// defect, not a retryable condition.
		panic(fmt.Sprintf("maze service: generated %s maze has unreachable goal", difficulty))
	}
	optimalLength := len(path) - 1

	var constraint *dmn.Constraint
	if profile.RequiredTiles > 0 {
		constraint = waypointConstraint(path, profile.RequiredTiles, rand.New(rand.NewSource(s.seed())))
	}

	record := dmn.NewMaze(uuid.New(), difficulty, grid, start, goal, optimalLength, constraint)
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Printf("generated %s maze %s (optimal %d moves)", difficulty, record.ID, optimalLength)
	return record, nil
}

// ByID retrieves a frozen maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return s.repo.ByID(ctx, id)
}

// waypointConstraint samples up to n distinct interior cells of the optimal
// path as a required-tiles constraint. Waypoints on the optimal path keep
// the constraint satisfiable without lengthening the best solution.
func waypointConstraint(path []maze.Position, n int, rng *rand.Rand) *dmn.Constraint {
	if len(path) <= 2 {
		return nil
	}

	interior := make([]maze.Position, len(path)-2)
	copy(interior, path[1:len(path)-1])
	rng.Shuffle(len(interior), func(a, b int) {
		interior[a], interior[b] = interior[b], interior[a]
	})

	n = min(n, len(interior))
	tiles := make([]dmn.Point, n)
	for idx := 0; idx < n; idx++ {
		tiles[idx] = dmn.PointFromEngine(interior[idx])
	}
	return &dmn.Constraint{Tiles: tiles}
}
