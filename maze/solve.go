package maze

// ShortestPath runs a breadth-first search over the open-passage graph and
// returns the positions of a shortest route from start to goal, inclusive
// of both endpoints. The second return is false when the goal is
// unreachable. A maze produced by a successful spine generation always has
// a reachable goal; callers treat the opposite as an invariant violation.
func ShortestPath(g *Grid, start, goal Position) ([]Position, bool) {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, false
	}

	const unvisited = -1
	prev := make([][]Position, g.Height)
	dist := make([][]int, g.Height)
	for y := range dist {
		dist[y] = make([]int, g.Width)
		prev[y] = make([]Position, g.Width)
		for x := range dist[y] {
			dist[y][x] = unvisited
		}
	}
	dist[start.Y][start.X] = 0

	queue := []Position{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			break
		}

		for _, m := range Moves {
			if !g.CanMove(current, m) {
				continue
			}
			next := current.Add(m.Delta())
			if dist[next.Y][next.X] != unvisited {
				continue
			}
			dist[next.Y][next.X] = dist[current.Y][current.X] + 1
			prev[next.Y][next.X] = current
			queue = append(queue, next)
		}
	}

	if dist[goal.Y][goal.X] == unvisited {
		return nil, false
	}

	path := make([]Position, dist[goal.Y][goal.X]+1)
	for p, i := goal, len(path)-1; i >= 0; i-- {
		path[i] = p
		p = prev[p.Y][p.X]
	}
	return path, true
}

// ShortestPathLength returns the minimum move count from start to goal, or
// false when the goal is unreachable. The value is computed once at
// generation time and stored as maze metadata; it is also the denominator
// of the efficiency score.
func ShortestPathLength(g *Grid, start, goal Position) (int, bool) {
	path, ok := ShortestPath(g, start, goal)
	if !ok {
		return 0, false
	}
	return len(path) - 1, true
}
