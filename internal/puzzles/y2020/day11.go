package y2020

import (
	"fmt"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Seating System
func init() {
	registry.Register(2020, 11, solver.Day[*seatLayout, int, int]{
		Generate: day11Generate,
		Part1:    solver.Func(day11Part1),
		Part2:    solver.Func(day11Part2),
	})
}

const (
	floor    = '.'
	empty    = 'L'
	occupied = '#'
)

type seatLayout struct {
	w, h  int
	cells []byte
}

var directions = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

func day11Generate(input string) (*seatLayout, error) {
	g, err := generator.Grid(input)
	if err != nil {
		return nil, err
	}
	l := &seatLayout{w: len(g[0]), h: len(g)}
	for y, row := range g {
		for x, c := range row {
			if c != floor && c != empty && c != occupied {
				return nil, &generator.ParseError{Line: y + 1, Text: string(row), Err: fmt.Errorf("unexpected %q at column %d", c, x+1)}
			}
		}
		l.cells = append(l.cells, row...)
	}
	return l, nil
}

// neighbours lists, for every seat, the seats it looks at. With sight set,
// a seat looks past floor to the first seat in each direction.
func (l *seatLayout) neighbours(sight bool) [][]int {
	out := make([][]int, len(l.cells))
	for i, c := range l.cells {
		if c == floor {
			continue
		}
		x, y := i%l.w, i/l.w
		for _, d := range directions {
			nx, ny := x+d[0], y+d[1]
			for nx >= 0 && nx < l.w && ny >= 0 && ny < l.h {
				if l.cells[ny*l.w+nx] != floor {
					out[i] = append(out[i], ny*l.w+nx)
					break
				}
				if !sight {
					break
				}
				nx, ny = nx+d[0], ny+d[1]
			}
		}
	}
	return out
}

// settle runs the automaton until no seat changes and counts the occupied
// seats. A seat empties when tolerance or more of its neighbours are taken.
func (l *seatLayout) settle(sight bool, tolerance int) int {
	nb := l.neighbours(sight)
	cur := append([]byte(nil), l.cells...)
	next := make([]byte, len(cur))
	for {
		changed := false
		for i, c := range cur {
			next[i] = c
			if c == floor {
				continue
			}
			taken := 0
			for _, j := range nb[i] {
				if cur[j] == occupied {
					taken++
				}
			}
			switch {
			case c == empty && taken == 0:
				next[i] = occupied
				changed = true
			case c == occupied && taken >= tolerance:
				next[i] = empty
				changed = true
			}
		}
		cur, next = next, cur
		if !changed {
			break
		}
	}
	n := 0
	for _, c := range cur {
		if c == occupied {
			n++
		}
	}
	return n
}

func day11Part1(l *seatLayout) int { return l.settle(false, 4) }

func day11Part2(l *seatLayout) int { return l.settle(true, 5) }
