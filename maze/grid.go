/*
Package maze is the benchmark's maze engine: a rectangular grid of walled
cells, two procedural generators (a randomized depth-first backtracker and a
spine-first generator that guarantees a long main path), a breadth-first
shortest-path solver, and a move-sequence validator that scores candidate
solutions against a maze.

The package does no I/O and holds no global state. Every generator takes an
explicit *rand.Rand so attempts are reproducible from a seed, and every call
owns its Grid for the duration of the call, so concurrent generations and
validations over distinct grids are safe.
*/
package maze

import (
	"fmt"
	"strings"
)

const maxGridDimension = 64

// Grid is a fixed-size 2D arrangement of cells, row-major (Cells[y][x]).
// A new grid is fully walled; generation only ever removes walls.
type Grid struct {
	Width  int      // Width of the grid (number of columns)
	Height int      // Height of the grid (number of rows)
	Cells  [][]Cell // 2D grid of cells, indexed [y][x]
}

// NewGrid initializes a fully walled grid of the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) <= 0 || max(width, height) > maxGridDimension {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellAt returns the cell at the given position.
func (g *Grid) CellAt(p Position) *Cell {
	return &g.Cells[p.Y][p.X]
}

// Neighbors finds all geometrically adjacent positions of a cell,
// bounds-checked. Walls are ignored.
func (g *Grid) Neighbors(p Position) []Position {
	var result []Position
	for _, m := range Moves {
		n := p.Add(m.Delta())
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// RemoveWallBetween takes down the wall pair shared by two adjacent cells,
// keeping both sides consistent. The cells must be exactly one unit apart;
// anything else is a defect in the caller and panics.
func (g *Grid) RemoveWallBetween(a, b Position) {
	delta := Position{X: b.X - a.X, Y: b.Y - a.Y}
	switch delta {
	case Position{X: 0, Y: -1}:
		g.Cells[a.Y][a.X].NorthWall = false
		g.Cells[b.Y][b.X].SouthWall = false
	case Position{X: 0, Y: 1}:
		g.Cells[a.Y][a.X].SouthWall = false
		g.Cells[b.Y][b.X].NorthWall = false
	case Position{X: 1, Y: 0}:
		g.Cells[a.Y][a.X].EastWall = false
		g.Cells[b.Y][b.X].WestWall = false
	case Position{X: -1, Y: 0}:
		g.Cells[a.Y][a.X].WestWall = false
		g.Cells[b.Y][b.X].EastWall = false
	default:
		panic(fmt.Sprintf("maze: RemoveWallBetween called with non-adjacent cells %v and %v", a, b))
	}
}

// CanMove reports whether the move from p is open: the destination is in
// bounds and the shared wall is down. A move off the grid edge is treated
// the same as a walled move.
func (g *Grid) CanMove(p Position, m Move) bool {
	to := p.Add(m.Delta())
	if !g.InBounds(p) || !g.InBounds(to) {
		return false
	}

	cell := g.CellAt(p)
	switch m {
	case MoveUp:
		return !cell.NorthWall
	case MoveDown:
		return !cell.SouthWall
	case MoveLeft:
		return !cell.WestWall
	case MoveRight:
		return !cell.EastWall
	default:
		return false
	}
}

// OpenPassages counts the open wall pairs in the grid. A perfect maze over
// w*h cells has exactly w*h-1 of them.
func (g *Grid) OpenPassages() int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.Cells[y][x]
			if !cell.EastWall && x+1 < g.Width {
				count++
			}
			if !cell.SouthWall && y+1 < g.Height {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return g.Render(Position{X: -1, Y: -1}, Position{X: -1, Y: -1})
}

// Render provides a textual representation of the grid with the start and
// goal cells marked. Positions outside the grid are simply not drawn.
func (g *Grid) Render(start, goal Position) string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.Width) + "\n"

	for y := 0; y < g.Height; y++ {
		// Cell rows
		cellRow := "|"
		for x := 0; x < g.Width; x++ {
			cell := g.Cells[y][x]

			switch (Position{X: x, Y: y}) {
			case start:
				cellRow += " S "
			case goal:
				cellRow += " G "
			default:
				cellRow += "   "
			}

			// Add east wall or space
			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for x := 0; x < g.Width; x++ {
			cell := g.Cells[y][x]

			// Add south wall or space
			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
