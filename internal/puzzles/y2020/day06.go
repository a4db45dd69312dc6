package y2020

import (
	"math/bits"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Custom Customs
func init() {
	registry.Register(2020, 6, solver.Day[[][]uint32, int, int]{
		Generate: day06Generate,
		Part1:    solver.Func(day06Part1),
		Part2:    solver.Func(day06Part2),
	})
}

// day06Generate returns, per group, one answer set per person with bit
// c-'a' set for every yes.
func day06Generate(input string) ([][]uint32, error) {
	blocks := generator.Blocks(input)
	if len(blocks) == 0 {
		return nil, generator.ErrEmpty
	}
	groups := make([][]uint32, 0, len(blocks))
	for _, b := range blocks {
		var group []uint32
		for _, person := range strings.Split(b, "\n") {
			var set uint32
			for _, c := range person {
				if c >= 'a' && c <= 'z' {
					set |= 1 << (c - 'a')
				}
			}
			group = append(group, set)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func day06Part1(groups [][]uint32) int {
	sum := 0
	for _, g := range groups {
		var union uint32
		for _, p := range g {
			union |= p
		}
		sum += bits.OnesCount32(union)
	}
	return sum
}

func day06Part2(groups [][]uint32) int {
	sum := 0
	for _, g := range groups {
		all := ^uint32(0)
		for _, p := range g {
			all &= p
		}
		sum += bits.OnesCount32(all)
	}
	return sum
}
