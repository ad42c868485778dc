package maze

import "math/rand"

// GenerateDFS carves a perfect maze over an initially fully walled grid
// using a randomized depth-first backtracker: from the seed cell it keeps
// stepping into a random unvisited neighbor, carving the shared wall, and
// backtracks along its path stack whenever it runs out of unvisited
// neighbors. Every cell ends up visited, the passage graph is a tree, and
// the algorithm cannot fail.
func GenerateDFS(width, height int, start Position, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(start) {
		return nil, errOutOfBounds(start, width, height)
	}

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}
	visited[start.Y][start.X] = true

	stack := []Position{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []Position
		for _, n := range g.Neighbors(current) {
			if !visited[n.Y][n.X] {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		g.RemoveWallBetween(current, next)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}

	return g, nil
}
