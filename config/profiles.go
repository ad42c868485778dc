package config

import "github.com/beka-birhanu/mazebench-api/maze"

// GeneratorProfile maps a difficulty to concrete maze geometry and
// generation parameters. The profile table is configuration data; the
// algorithms in the maze package never consult it directly.
type GeneratorProfile struct {
	Width  int
	Height int

	// UseSpine selects the spine-first generator; otherwise the DFS
	// backtracker is used, which cannot fail.
	UseSpine bool
	Spine    maze.SpineConfig

	// RequiredTiles is the number of waypoint tiles to attach as a
	// required-tiles constraint, sampled from the optimal path interior.
	// Zero attaches no constraint.
	RequiredTiles int

	// MaxAttempts bounds the generation retry loop.
	MaxAttempts int
}

// ProfileFor returns the generation profile of a difficulty. Unknown values
// fall back to the simple profile.
func ProfileFor(d maze.Difficulty) GeneratorProfile {
	switch d {
	case maze.Easy:
		return GeneratorProfile{Width: 7, Height: 7, MaxAttempts: 1}
	case maze.Medium:
		return GeneratorProfile{
			Width: 10, Height: 10, UseSpine: true, MaxAttempts: 25,
			Spine: maze.SpineConfig{
				Tortuosity:    1.3,
				MinTurns:      4,
				BranchProb:    0.3,
				BranchSpacing: 2,
				BranchMinLen:  2,
				BranchMaxLen:  4,
				SubBranchProb: 0.2,
				FillUnvisited: true,
			},
		}
	case maze.Hard:
		return GeneratorProfile{
			Width: 14, Height: 14, UseSpine: true, MaxAttempts: 40,
			Spine: maze.SpineConfig{
				Tortuosity:    1.6,
				MinTurns:      8,
				BranchProb:    0.4,
				BranchSpacing: 2,
				BranchMinLen:  2,
				BranchMaxLen:  6,
				SubBranchProb: 0.3,
				FillUnvisited: true,
			},
		}
	case maze.Nightmare:
		return GeneratorProfile{
			Width: 18, Height: 18, UseSpine: true, MaxAttempts: 60, RequiredTiles: 2,
			Spine: maze.SpineConfig{
				Tortuosity:    1.9,
				MinTurns:      12,
				BranchProb:    0.45,
				BranchSpacing: 2,
				BranchMinLen:  3,
				BranchMaxLen:  7,
				SubBranchProb: 0.35,
				FillUnvisited: true,
			},
		}
	case maze.Horror:
		return GeneratorProfile{
			Width: 24, Height: 24, UseSpine: true, MaxAttempts: 80, RequiredTiles: 3,
			Spine: maze.SpineConfig{
				Tortuosity:    2.2,
				MinTurns:      16,
				BranchProb:    0.5,
				BranchSpacing: 3,
				BranchMinLen:  3,
				BranchMaxLen:  8,
				SubBranchProb: 0.4,
				FillUnvisited: true,
			},
		}
	default: // maze.Simple
		return GeneratorProfile{Width: 5, Height: 5, MaxAttempts: 1}
	}
}
