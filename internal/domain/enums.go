package domain

import "fmt"

// Part selects which half of a puzzle to solve.
type Part int

const (
	Part1 Part = iota + 1
	Part2
)

// Parts lists both parts in order.
func Parts() []Part { return []Part{Part1, Part2} }

func (p Part) String() string {
	switch p {
	case Part1:
		return "part1"
	case Part2:
		return "part2"
	default:
		return fmt.Sprintf("part(%d)", int(p))
	}
}

// Valid reports whether p is Part1 or Part2.
func (p Part) Valid() bool { return p == Part1 || p == Part2 }

// ParsePart accepts "1", "2", "part1" and "part2".
func ParsePart(s string) (Part, error) {
	switch s {
	case "1", "part1":
		return Part1, nil
	case "2", "part2":
		return Part2, nil
	}
	return 0, fmt.Errorf("unknown part %q", s)
}
