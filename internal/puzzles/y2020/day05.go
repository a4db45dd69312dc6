package y2020

import (
	"fmt"
	"slices"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Binary Boarding
func init() {
	registry.Register(2020, 5, solver.Day[[]seat, int, int]{
		Generate: day05Generate,
		Part1:    day05Part1,
		Part2:    day05Part2,
	})
}

type seat struct{ row, col int }

func (s seat) id() int { return s.row*8 + s.col }

type interval struct{ lo, hi int }

// split keeps the lower half for lower and the upper half otherwise.
func (iv interval) split(lower bool) (interval, error) {
	if iv.lo == iv.hi {
		return iv, fmt.Errorf("can't split interval %d..%d", iv.lo, iv.hi)
	}
	mid := (iv.lo + iv.hi + 1) / 2
	if lower {
		return interval{iv.lo, mid - 1}, nil
	}
	return interval{mid, iv.hi}, nil
}

// narrow folds the pass characters over 0..top; lo and hi name the
// characters selecting the lower and upper half.
func narrow(code string, top int, lo, hi byte) (int, error) {
	iv := interval{0, top}
	for i := 0; i < len(code); i++ {
		var err error
		switch code[i] {
		case lo:
			iv, err = iv.split(true)
		case hi:
			iv, err = iv.split(false)
		default:
			return 0, fmt.Errorf("unexpected %q, want %q or %q", code[i], lo, hi)
		}
		if err != nil {
			return 0, err
		}
	}
	if iv.lo != iv.hi {
		return 0, fmt.Errorf("%q leaves %d..%d open", code, iv.lo, iv.hi)
	}
	return iv.lo, nil
}

func parseSeat(pass string) (seat, error) {
	if len(pass) != 10 {
		return seat{}, fmt.Errorf("boarding pass has %d characters, want 10", len(pass))
	}
	row, err := narrow(pass[:7], 127, 'F', 'B')
	if err != nil {
		return seat{}, err
	}
	col, err := narrow(pass[7:], 7, 'L', 'R')
	if err != nil {
		return seat{}, err
	}
	return seat{row: row, col: col}, nil
}

func day05Generate(input string) ([]seat, error) {
	return generator.MapLines(input, parseSeat)
}

func day05Part1(seats []seat) (int, error) {
	if len(seats) == 0 {
		return 0, errNoAnswer
	}
	best := 0
	for _, s := range seats {
		best = max(best, s.id())
	}
	return best, nil
}

func day05Part2(seats []seat) (int, error) {
	ids := make([]int, len(seats))
	for i, s := range seats {
		ids[i] = s.id()
	}
	return missingSeat(ids)
}

// missingSeat finds the only free id whose neighbours are both taken.
func missingSeat(ids []int) (int, error) {
	ids = slices.Clone(ids)
	slices.Sort(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] == 2 {
			return ids[i] - 1, nil
		}
	}
	return 0, errNoAnswer
}
