// Package y2022 holds the Advent of Code 2022 solutions.
package y2022

import (
	"slices"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Calorie Counting
func init() {
	registry.Register(2022, 1, solver.Day[[]int, int, int]{
		Generate: day01Generate,
		Part1:    solver.Func(func(elves []int) int { return topCalories(elves, 1) }),
		Part2:    solver.Func(func(elves []int) int { return topCalories(elves, 3) }),
	})
}

// day01Generate totals the calories each elf carries, largest first.
func day01Generate(input string) ([]int, error) {
	blocks := generator.Blocks(input)
	if len(blocks) == 0 {
		return nil, generator.ErrEmpty
	}
	elves := make([]int, 0, len(blocks))
	for _, b := range blocks {
		items, err := generator.Ints[int](b)
		if err != nil {
			return nil, err
		}
		sum := 0
		for _, c := range items {
			sum += c
		}
		elves = append(elves, sum)
	}
	slices.SortFunc(elves, func(a, b int) int { return b - a })
	return elves, nil
}

func topCalories(elves []int, n int) int {
	sum := 0
	for _, c := range elves[:min(n, len(elves))] {
		sum += c
	}
	return sum
}
