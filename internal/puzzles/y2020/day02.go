package y2020

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Password Philosophy
func init() {
	registry.Register(2020, 2, solver.Day[[]passwordEntry, int, int]{
		Generate: day02Generate,
		Part1:    solver.Func(day02Part1),
		Part2:    solver.Func(day02Part2),
	})
}

type passwordEntry struct {
	lo, hi   int
	letter   byte
	password string
}

var (
	passwordRe      = regexp.MustCompile(`^(\d+)-(\d+) (\w): (\w+)$`)
	errPasswordLine = errors.New(`want "lo-hi c: password"`)
)

func day02Generate(input string) ([]passwordEntry, error) {
	return generator.MapLines(input, func(line string) (passwordEntry, error) {
		m := passwordRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return passwordEntry{}, errPasswordLine
		}
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo < 1 || hi < lo {
			return passwordEntry{}, fmt.Errorf("bad policy range %d-%d", lo, hi)
		}
		return passwordEntry{lo: lo, hi: hi, letter: m[3][0], password: m[4]}, nil
	})
}

// countValid checks that the letter occurs lo..hi times.
func (e passwordEntry) countValid() bool {
	n := strings.Count(e.password, string(e.letter))
	return n >= e.lo && n <= e.hi
}

// positionValid checks that exactly one of the 1-based positions lo and hi
// holds the letter.
func (e passwordEntry) positionValid() bool {
	at := func(i int) bool { return i <= len(e.password) && e.password[i-1] == e.letter }
	return at(e.lo) != at(e.hi)
}

func day02Part1(entries []passwordEntry) int {
	n := 0
	for _, e := range entries {
		if e.countValid() {
			n++
		}
	}
	return n
}

func day02Part2(entries []passwordEntry) int {
	n := 0
	for _, e := range entries {
		if e.positionValid() {
			n++
		}
	}
	return n
}
