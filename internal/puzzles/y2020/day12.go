package y2020

import (
	"fmt"
	"strconv"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Rain Risk
func init() {
	registry.Register(2020, 12, solver.Day[[]navInstruction, int, int]{
		Generate: day12Generate,
		Part1:    solver.Func(day12Part1),
		Part2:    solver.Func(day12Part2),
	})
}

type navInstruction struct {
	action byte
	value  int
}

type vec struct{ east, north int }

func (v vec) add(o vec, k int) vec { return vec{v.east + o.east*k, v.north + o.north*k} }

// left rotates v counter-clockwise by quarter turns.
func (v vec) left(quarters int) vec {
	for range (quarters%4 + 4) % 4 {
		v = vec{-v.north, v.east}
	}
	return v
}

func (v vec) manhattan() int { return abs(v.east) + abs(v.north) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var compass = map[byte]vec{'N': {0, 1}, 'S': {0, -1}, 'E': {1, 0}, 'W': {-1, 0}}

func parseNav(line string) (navInstruction, error) {
	if len(line) < 2 {
		return navInstruction{}, fmt.Errorf("instruction too short")
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return navInstruction{}, err
	}
	in := navInstruction{action: line[0], value: n}
	switch in.action {
	case 'N', 'S', 'E', 'W', 'F':
	case 'L', 'R':
		if n%90 != 0 {
			return navInstruction{}, fmt.Errorf("turn of %d degrees is not a multiple of 90", n)
		}
	default:
		return navInstruction{}, fmt.Errorf("unknown action %q", in.action)
	}
	return in, nil
}

func day12Generate(input string) ([]navInstruction, error) {
	return generator.MapLines(input, parseNav)
}

// steer moves either the ship or the waypoint for compass actions, rotates
// heading for turns and moves the ship along heading for F.
func steer(ins []navInstruction, heading vec, moveWaypoint bool) int {
	var ship vec
	for _, in := range ins {
		switch in.action {
		case 'L':
			heading = heading.left(in.value / 90)
		case 'R':
			heading = heading.left(-in.value / 90)
		case 'F':
			ship = ship.add(heading, in.value)
		default:
			if moveWaypoint {
				heading = heading.add(compass[in.action], in.value)
			} else {
				ship = ship.add(compass[in.action], in.value)
			}
		}
	}
	return ship.manhattan()
}

func day12Part1(ins []navInstruction) int { return steer(ins, vec{1, 0}, false) }

func day12Part2(ins []navInstruction) int { return steer(ins, vec{10, 1}, true) }
