package maze

import (
	"fmt"
	"math"
	"math/rand"
)

// Scoring weights for the Phase-1 walk. The jitter term dominates the turn
// bonus and the goal pull so the spine stays organic instead of collapsing
// into a straight line.
const (
	spineJitterWeight = 2.5
	spineTurnBonus    = 1.0
	spineGoalPull     = 0.08

	// Phase-1 iteration cap, per grid cell.
	spineIterationFactor = 12

	maxSubBranches = 3

	noHeading = Move(-1)
)

// SpineConfig holds the knobs of the spine-first generator. Zero values are
// normalized to defaults that produce a plain, lightly decorated maze.
type SpineConfig struct {
	// Tortuosity multiplies the start-goal Manhattan distance to set the
	// minimum acceptable spine length.
	Tortuosity float64

	// MinTurns is the minimum number of direction changes the spine must
	// contain. Zero disables the requirement.
	MinTurns int

	// BranchProb is the per-spine-cell probability of spawning a dead-end
	// branch, once the spacing requirement is met.
	BranchProb float64

	// BranchSpacing is the minimum number of spine cells between two
	// consecutive branch points.
	BranchSpacing int

	// BranchMinLen and BranchMaxLen bound the random walk length of each
	// branch.
	BranchMinLen int
	BranchMaxLen int

	// SubBranchProb is the per-interior-cell probability of a branch
	// spawning a shorter linear sub-branch, capped at three per branch.
	SubBranchProb float64

	// FillUnvisited enables Phase 3: connecting leftover unvisited pockets
	// into the maze as further dead ends.
	FillUnvisited bool
}

func (c SpineConfig) normalized() SpineConfig {
	if c.Tortuosity <= 0 {
		c.Tortuosity = 1.0
	}
	if c.BranchMinLen <= 0 {
		c.BranchMinLen = 1
	}
	if c.BranchMaxLen < c.BranchMinLen {
		c.BranchMaxLen = c.BranchMinLen
	}
	return c
}

type spineGenerator struct {
	grid    *Grid
	cfg     SpineConfig
	rng     *rand.Rand
	start   Position
	goal    Position
	visited [][]bool
	onSpine [][]bool
}

// GenerateSpine runs one spine-first generation attempt: a biased random
// walk carves a guaranteed start-to-goal path (Phase 1), dead-end branches
// decorate it (Phase 2), and leftover pockets are optionally connected in
// (Phase 3). The attempt either returns a fully carved grid or one of the
// generation failure errors; it never retries internally. The caller retries
// the whole attempt with a fresh rng, bounded by its own attempt limit.
func GenerateSpine(width, height int, start, goal Position, cfg SpineConfig, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(start) {
		return nil, errOutOfBounds(start, width, height)
	}
	if !g.InBounds(goal) {
		return nil, errOutOfBounds(goal, width, height)
	}
	if start == goal {
		return nil, fmt.Errorf("start and goal coincide at %v", start)
	}

	sg := &spineGenerator{
		grid:    g,
		cfg:     cfg.normalized(),
		rng:     rng,
		start:   start,
		goal:    goal,
		visited: make([][]bool, height),
		onSpine: make([][]bool, height),
	}
	for y := 0; y < height; y++ {
		sg.visited[y] = make([]bool, width)
		sg.onSpine[y] = make([]bool, width)
	}

	spine, err := sg.walkSpine()
	if err != nil {
		return nil, err
	}

	// The walk itself only marks cells; walls come down once the spine is
	// accepted, since walls are never re-added on backtrack.
	for i := 1; i < len(spine); i++ {
		g.RemoveWallBetween(spine[i-1], spine[i])
	}
	for _, p := range spine {
		sg.onSpine[p.Y][p.X] = true
	}

	sg.decorate(spine)
	if sg.cfg.FillUnvisited {
		sg.fill()
	}

	return g, nil
}

// walkSpine is Phase 1: a biased random walk from start toward goal over
// unvisited cells. Each candidate neighbor is scored with a dominant uniform
// jitter, a turn bonus while the minimum turn count is unmet, and a weak
// pull toward the goal; the highest score wins. Dead ends backtrack by
// unmarking and popping one cell.
func (sg *spineGenerator) walkSpine() ([]Position, error) {
	maxIterations := sg.grid.Width * sg.grid.Height * spineIterationFactor

	stack := []Position{sg.start}
	sg.visited[sg.start.Y][sg.start.X] = true
	heading := noHeading
	turns := 0

	for iterations := 0; ; iterations++ {
		if iterations >= maxIterations {
			return nil, ErrIterationCap
		}

		current := stack[len(stack)-1]

		bestMove := noHeading
		var bestPos Position
		bestScore := math.Inf(-1)
		for _, m := range Moves {
			n := current.Add(m.Delta())
			if !sg.grid.InBounds(n) || sg.visited[n.Y][n.X] {
				continue
			}

			score := sg.rng.Float64() * spineJitterWeight
			if heading != noHeading && m != heading && turns < sg.cfg.MinTurns {
				score += spineTurnBonus
			}
			score -= spineGoalPull * float64(Manhattan(n, sg.goal))

			if score > bestScore {
				bestScore = score
				bestMove = m
				bestPos = n
			}
		}

		if bestMove == noHeading {
			// Dead end: unmark the cell and back off one step. Heading is
			// recomputed from the remaining stack; the accumulated turn
			// count is not rewound, so it may overcount slightly after
			// backtracking.
			sg.visited[current.Y][current.X] = false
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return nil, ErrNoSpine
			}
			heading = stackHeading(stack)
			continue
		}

		if heading != noHeading && bestMove != heading {
			turns++
		}
		heading = bestMove
		sg.visited[bestPos.Y][bestPos.X] = true
		stack = append(stack, bestPos)

		if bestPos == sg.goal {
			minLen := int(math.Ceil(float64(Manhattan(sg.start, sg.goal)) * sg.cfg.Tortuosity))
			if len(stack)-1 < minLen {
				return nil, ErrSpineTooShort
			}
			if sg.cfg.MinTurns > 0 && turns < sg.cfg.MinTurns {
				return nil, ErrTooFewTurns
			}
			return stack, nil
		}
	}
}

// stackHeading derives the walk heading from the top two stack entries.
func stackHeading(stack []Position) Move {
	if len(stack) < 2 {
		return noHeading
	}
	prev, current := stack[len(stack)-2], stack[len(stack)-1]
	delta := Position{X: current.X - prev.X, Y: current.Y - prev.Y}
	for _, m := range Moves {
		if m.Delta() == delta {
			return m
		}
	}
	return noHeading
}

// decorate is Phase 2: walk the spine interior and spawn dead-end branches,
// keeping at least BranchSpacing spine cells between branch points.
func (sg *spineGenerator) decorate(spine []Position) {
	if sg.cfg.BranchProb <= 0 || len(spine) < 3 {
		return
	}

	since := sg.cfg.BranchSpacing
	for _, p := range spine[1 : len(spine)-1] {
		if since >= sg.cfg.BranchSpacing && sg.rng.Float64() < sg.cfg.BranchProb {
			length := sg.cfg.BranchMinLen + sg.rng.Intn(sg.cfg.BranchMaxLen-sg.cfg.BranchMinLen+1)
			if sg.growBranch(p, length, 0) {
				since = 0
				continue
			}
		}
		since++
	}
}

// growBranch carves a random-walk dead end of at most the given length,
// extending only into unvisited cells so it can never reconnect to the
// spine or to another branch. Depth 0 branches may spawn up to three
// shorter linear sub-branches from their interior cells (never the first
// cell); depth 1 never recurses, which caps nesting at exactly two levels.
func (sg *spineGenerator) growBranch(from Position, length, depth int) bool {
	current := from
	var carved []Position
	for i := 0; i < length; i++ {
		var candidates []Position
		for _, n := range sg.grid.Neighbors(current) {
			if !sg.visited[n.Y][n.X] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			break
		}

		next := candidates[sg.rng.Intn(len(candidates))]
		sg.grid.RemoveWallBetween(current, next)
		sg.visited[next.Y][next.X] = true
		carved = append(carved, next)
		current = next
	}

	if len(carved) == 0 {
		return false
	}

	if depth == 0 && sg.cfg.SubBranchProb > 0 {
		spawned := 0
		for _, cell := range carved[1:] {
			if spawned >= maxSubBranches {
				break
			}
			if sg.rng.Float64() >= sg.cfg.SubBranchProb {
				continue
			}
			subLen := 1 + sg.rng.Intn(max(1, length/2))
			if sg.growBranch(cell, subLen, depth+1) {
				spawned++
			}
		}
	}

	return true
}

// fill is Phase 3: every leftover unvisited pocket is joined to the maze by
// a single wall removal into a visited cell and then carved out depth-first.
// Each pocket hangs off one passage, so the start-goal shortest path is
// unchanged. Non-spine entry cells are preferred so the spine corridor
// keeps its walls wherever possible.
func (sg *spineGenerator) fill() {
	for changed := true; changed; {
		changed = false
		for y := 0; y < sg.grid.Height; y++ {
			for x := 0; x < sg.grid.Width; x++ {
				p := Position{X: x, Y: y}
				if sg.visited[y][x] {
					continue
				}
				entry, ok := sg.entryPoint(p)
				if !ok {
					continue
				}

				sg.grid.RemoveWallBetween(entry, p)
				sg.visited[y][x] = true
				sg.carveUnvisited(p)
				changed = true
			}
		}
	}
}

// entryPoint picks a visited neighbor to attach an unvisited pocket to,
// preferring cells off the spine.
func (sg *spineGenerator) entryPoint(p Position) (Position, bool) {
	found := false
	var fallback Position
	for _, n := range sg.grid.Neighbors(p) {
		if !sg.visited[n.Y][n.X] {
			continue
		}
		if !sg.onSpine[n.Y][n.X] {
			return n, true
		}
		fallback = n
		found = true
	}
	return fallback, found
}

// carveUnvisited exhausts an unvisited pocket with a depth-first carve,
// leaving it a tree of dead ends.
func (sg *spineGenerator) carveUnvisited(from Position) {
	stack := []Position{from}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []Position
		for _, n := range sg.grid.Neighbors(current) {
			if !sg.visited[n.Y][n.X] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[sg.rng.Intn(len(candidates))]
		sg.grid.RemoveWallBetween(current, next)
		sg.visited[next.Y][next.X] = true
		stack = append(stack, next)
	}
}
