// Package domain holds the immutable records the benchmark persists: user
// accounts, frozen mazes, and scored evaluations. Records convert to and
// from the engine types in the maze package but carry no behavior of their
// own beyond that conversion.
package domain

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/google/uuid"
)

// Point is a stored cell coordinate.
type Point struct {
	X int `bson:"x" json:"x"`
	Y int `bson:"y" json:"y"`
}

// ToEngine converts the stored point to an engine position.
func (p Point) ToEngine() maze.Position {
	return maze.Position{X: p.X, Y: p.Y}
}

// PointFromEngine converts an engine position to its stored form.
func PointFromEngine(p maze.Position) Point {
	return Point{X: p.X, Y: p.Y}
}

// MazeCell is the stored wall state of one cell.
type MazeCell struct {
	North bool `bson:"n" json:"north"`
	South bool `bson:"s" json:"south"`
	East  bool `bson:"e" json:"east"`
	West  bool `bson:"w" json:"west"`
}

// ConstraintStep is one stored step of a required move sequence.
type ConstraintStep struct {
	Move string `bson:"move" json:"move"`
	Pos  Point  `bson:"pos" json:"pos"`
}

// ConstraintSequence is a stored named move sequence.
type ConstraintSequence struct {
	Name  string           `bson:"name" json:"name"`
	Steps []ConstraintStep `bson:"steps" json:"steps"`
}

// Constraint is the stored form of an optional maze constraint.
type Constraint struct {
	Tiles     []Point              `bson:"tiles,omitempty" json:"tiles,omitempty"`
	Sequences []ConstraintSequence `bson:"sequences,omitempty" json:"sequences,omitempty"`
}

// ToEngine converts the stored constraint to its engine form.
func (c *Constraint) ToEngine() (*maze.Constraint, error) {
	if c == nil {
		return nil, nil
	}

	out := &maze.Constraint{}
	for _, tile := range c.Tiles {
		out.Tiles = append(out.Tiles, tile.ToEngine())
	}
	for _, seq := range c.Sequences {
		engineSeq := maze.MoveSequence{Name: seq.Name}
		for _, step := range seq.Steps {
			m, err := maze.ParseMove(step.Move)
			if err != nil {
				return nil, fmt.Errorf("constraint %q: %w", seq.Name, err)
			}
			engineSeq.Steps = append(engineSeq.Steps, maze.Step{Move: m, Pos: step.Pos.ToEngine()})
		}
		out.Sequences = append(out.Sequences, engineSeq)
	}
	return out, nil
}

// Maze is a frozen maze record. It is created once from a successfully
// generated grid and never mutated afterwards.
type Maze struct {
	ID            uuid.UUID    `bson:"_id"`
	Difficulty    string       `bson:"difficulty"`
	Width         int          `bson:"width"`
	Height        int          `bson:"height"`
	Cells         [][]MazeCell `bson:"cells"`
	Start         Point        `bson:"start"`
	Goal          Point        `bson:"goal"`
	OptimalLength int          `bson:"optimalLength"`
	Constraint    *Constraint  `bson:"constraint,omitempty"`
	CreatedAt     time.Time    `bson:"createdAt"`
}

// NewMaze freezes a generated grid into a persistable record.
func NewMaze(id uuid.UUID, difficulty maze.Difficulty, g *maze.Grid, start, goal maze.Position, optimalLength int, constraint *Constraint) *Maze {
	cells := make([][]MazeCell, g.Height)
	for y := 0; y < g.Height; y++ {
		cells[y] = make([]MazeCell, g.Width)
		for x := 0; x < g.Width; x++ {
			cell := g.Cells[y][x]
			cells[y][x] = MazeCell{
				North: cell.NorthWall,
				South: cell.SouthWall,
				East:  cell.EastWall,
				West:  cell.WestWall,
			}
		}
	}

	return &Maze{
		ID:            id,
		Difficulty:    difficulty.String(),
		Width:         g.Width,
		Height:        g.Height,
		Cells:         cells,
		Start:         PointFromEngine(start),
		Goal:          PointFromEngine(goal),
		OptimalLength: optimalLength,
		Constraint:    constraint,
		CreatedAt:     time.Now().UTC(),
	}
}

// Grid rebuilds the engine grid from the stored wall flags.
func (m *Maze) Grid() (*maze.Grid, error) {
	g, err := maze.NewGrid(m.Width, m.Height)
	if err != nil {
		return nil, err
	}
	if len(m.Cells) != m.Height {
		return nil, fmt.Errorf("maze %s: corrupt cell snapshot", m.ID)
	}

	for y := 0; y < m.Height; y++ {
		if len(m.Cells[y]) != m.Width {
			return nil, fmt.Errorf("maze %s: corrupt cell snapshot", m.ID)
		}
		for x := 0; x < m.Width; x++ {
			stored := m.Cells[y][x]
			cell := &g.Cells[y][x]
			cell.NorthWall = stored.North
			cell.SouthWall = stored.South
			cell.EastWall = stored.East
			cell.WestWall = stored.West
		}
	}
	return g, nil
}

// Rendered returns the ASCII rendering of the maze with start and goal
// marked.
func (m *Maze) Rendered() (string, error) {
	g, err := m.Grid()
	if err != nil {
		return "", err
	}
	return g.Render(m.Start.ToEngine(), m.Goal.ToEngine()), nil
}
