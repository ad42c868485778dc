package maze

import "fmt"

// Position is a cell coordinate. X grows east, Y grows south, so (0, 0) is
// the north-west corner of the grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position shifted by the given delta.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the L1 distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Cell represents a single cell in a maze grid. A fresh cell has all four
// walls up; generation only ever takes walls down.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// Move is one of the four orthogonal unit moves.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// moveDeltas maps each move to its unit position delta.
var moveDeltas = [...]Position{
	MoveUp:    {X: 0, Y: -1},
	MoveDown:  {X: 0, Y: 1},
	MoveLeft:  {X: -1, Y: 0},
	MoveRight: {X: 1, Y: 0},
}

// Delta returns the unit position delta of the move.
func (m Move) Delta() Position {
	return moveDeltas[m]
}

// String returns the wire form of the move (UP, DOWN, LEFT, RIGHT).
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "UP"
	case MoveDown:
		return "DOWN"
	case MoveLeft:
		return "LEFT"
	case MoveRight:
		return "RIGHT"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// ParseMove parses the wire form of a move.
func ParseMove(s string) (Move, error) {
	switch s {
	case "UP":
		return MoveUp, nil
	case "DOWN":
		return MoveDown, nil
	case "LEFT":
		return MoveLeft, nil
	case "RIGHT":
		return MoveRight, nil
	default:
		return 0, fmt.Errorf("unknown move %q", s)
	}
}

// Moves lists the four moves in a fixed order, for deterministic iteration.
var Moves = [...]Move{MoveUp, MoveDown, MoveLeft, MoveRight}
