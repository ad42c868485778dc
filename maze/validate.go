package maze

// Step is one realized step of a replayed path: the move taken and the
// position it landed on.
type Step struct {
	Move Move     `json:"move"`
	Pos  Position `json:"pos"`
}

// MoveSequence is a named sequence of steps that must appear, in order, as
// an order-preserving (not necessarily contiguous) subsequence of the
// realized path.
type MoveSequence struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Constraint optionally attaches to a maze. Tiles lists positions that must
// all be visited at or before reaching the goal; Sequences lists
// subsequences that must each appear in order in the realized path. Either
// list may be empty.
type Constraint struct {
	Tiles     []Position     `json:"tiles,omitempty"`
	Sequences []MoveSequence `json:"sequences,omitempty"`
}

// ValidationResult is the verdict of replaying a move sequence against a
// maze. An invalid or incomplete solution is a normal result, never an
// error.
type ValidationResult struct {
	// IsValid is false when the replay hit a wall or the grid edge.
	IsValid bool

	// ReachesGoal is true when the replay arrived at the goal.
	ReachesGoal bool

	// PathLength counts the moves consumed up to the goal or the failure.
	PathLength int

	// FinalPosition is where the replay halted.
	FinalPosition Position

	// Efficiency is optimal/actual move count. Only meaningful when
	// ReachesGoal is true.
	Efficiency float64

	// ConstraintsSatisfied is nil when the maze carries no constraint, and
	// only meaningful when ReachesGoal is true.
	ConstraintsSatisfied *bool
}

// ValidateSolution replays a candidate move list from start against the
// grid. The replay halts on the first illegal move (a walled direction or
// the grid edge) with IsValid=false, and halts successfully the first time
// the goal is reached; trailing moves are never evaluated. Replaying the
// same moves against the same grid always yields the same result.
func ValidateSolution(g *Grid, start, goal Position, optimalLength int, moves []Move, constraint *Constraint) ValidationResult {
	result := ValidationResult{
		IsValid:       true,
		FinalPosition: start,
	}

	position := start
	visited := []Position{start}
	var realized []Step

	if position == goal {
		result.ReachesGoal = true
	}

	for _, m := range moves {
		if result.ReachesGoal {
			break
		}
		if !g.CanMove(position, m) {
			result.IsValid = false
			break
		}

		position = position.Add(m.Delta())
		result.PathLength++
		visited = append(visited, position)
		realized = append(realized, Step{Move: m, Pos: position})

		if position == goal {
			result.ReachesGoal = true
		}
	}
	result.FinalPosition = position

	if result.ReachesGoal {
		if result.PathLength == 0 {
			result.Efficiency = 1.0
		} else {
			result.Efficiency = float64(optimalLength) / float64(result.PathLength)
		}
	}

	if constraint != nil {
		satisfied := constraint.satisfiedBy(visited, realized)
		result.ConstraintsSatisfied = &satisfied
	}

	return result
}

// satisfiedBy evaluates the constraint over the realized path, independent
// of the illegal-move or goal cutoff already applied to the replay.
func (c *Constraint) satisfiedBy(visited []Position, realized []Step) bool {
	for _, tile := range c.Tiles {
		if !containsPosition(visited, tile) {
			return false
		}
	}
	for _, seq := range c.Sequences {
		if !isSubsequence(seq.Steps, realized) {
			return false
		}
	}
	return true
}

func containsPosition(path []Position, p Position) bool {
	for _, v := range path {
		if v == p {
			return true
		}
	}
	return false
}

// isSubsequence reports whether want appears order-preserved within got.
func isSubsequence(want, got []Step) bool {
	i := 0
	for _, step := range got {
		if i == len(want) {
			break
		}
		if step == want[i] {
			i++
		}
	}
	return i == len(want)
}
