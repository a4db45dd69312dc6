package y2020

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Shuttle Search
func init() {
	registry.Register(2020, 13, solver.Day[schedule, int64, int64]{
		Generate: day13Generate,
		Part1:    day13Part1,
		Part2:    day13Part2,
	})
}

type bus struct {
	id     int64
	offset int64 // position in the list
}

type schedule struct {
	earliest int64
	buses    []bus
}

func day13Generate(input string) (schedule, error) {
	lines := generator.Lines(input)
	if len(lines) != 2 {
		return schedule{}, fmt.Errorf("want 2 lines, have %d", len(lines))
	}
	earliest, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return schedule{}, &generator.ParseError{Line: 1, Text: lines[0], Err: err}
	}
	s := schedule{earliest: earliest}
	for i, f := range strings.Split(strings.TrimSpace(lines[1]), ",") {
		if f == "x" {
			continue
		}
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil || id <= 0 {
			return schedule{}, &generator.ParseError{Line: 2, Text: lines[1], Err: fmt.Errorf("bad bus id %q", f)}
		}
		s.buses = append(s.buses, bus{id: id, offset: int64(i)})
	}
	if len(s.buses) == 0 {
		return schedule{}, errors.New("no buses in service")
	}
	return s, nil
}

// day13Part1 multiplies the id of the first bus to depart after earliest by
// the minutes waited for it.
func day13Part1(s schedule) (int64, error) {
	best, wait := int64(0), int64(-1)
	for _, b := range s.buses {
		w := (b.id - s.earliest%b.id) % b.id
		if wait < 0 || w < wait {
			best, wait = b.id, w
		}
	}
	return best * wait, nil
}

// day13Part2 finds the earliest t with every bus departing at t+offset. It
// sieves one bus at a time, stepping by the lcm of the buses already lined
// up.
func day13Part2(s schedule) (int64, error) {
	t, step := int64(0), int64(1)
	for _, b := range s.buses {
		for i := int64(0); (t+b.offset)%b.id != 0; i++ {
			if i == b.id {
				return 0, fmt.Errorf("bus %d can never depart at offset %d: %w", b.id, b.offset, errNoAnswer)
			}
			t += step
		}
		step = lcm(step, b.id)
	}
	return t, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 { return a / gcd(a, b) * b }
