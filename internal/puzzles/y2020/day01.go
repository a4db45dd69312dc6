package y2020

import (
	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Report Repair
func init() {
	registry.Register(2020, 1, solver.Day[[]int, int, int]{
		Generate: generator.Ints[int],
		Part1:    day01Part1,
		Part2:    day01Part2,
	})
}

const expenseTarget = 2020

func day01Part1(entries []int) (int, error) {
	a, b, ok := pairSum(entries, expenseTarget)
	if !ok {
		return 0, errNoAnswer
	}
	return a * b, nil
}

func day01Part2(entries []int) (int, error) {
	for i, a := range entries {
		if b, c, ok := pairSum(entries[i+1:], expenseTarget-a); ok {
			return a * b * c, nil
		}
	}
	return 0, errNoAnswer
}

// pairSum finds two entries at different positions adding up to target.
func pairSum(entries []int, target int) (int, int, bool) {
	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if seen[target-e] {
			return target - e, e, true
		}
		seen[e] = true
	}
	return 0, 0, false
}
