package maze

import "fmt"

// Difficulty is the ordered ladder of benchmark levels. Higher values map to
// larger grids and stricter generation parameters; the mapping itself is
// configuration data and lives outside this package.
type Difficulty int

const (
	Simple Difficulty = iota
	Easy
	Medium
	Hard
	Nightmare
	Horror
)

// String returns the wire form of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Simple:
		return "simple"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Nightmare:
		return "nightmare"
	case Horror:
		return "horror"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty parses the wire form of a difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "simple":
		return Simple, nil
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "nightmare":
		return Nightmare, nil
	case "horror":
		return Horror, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}
