package y2020

import (
	"fmt"
	"slices"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Adapter Array
func init() {
	registry.Register(2020, 10, solver.Day[[]int, int, int64]{
		Generate: day10Generate,
		Part1:    day10Part1,
		Part2:    solver.Func(day10Part2),
	})
}

// day10Generate returns the full chain: the outlet (0), the sorted adapters
// and the device (highest adapter + 3).
func day10Generate(input string) ([]int, error) {
	adapters, err := generator.Ints[int](input)
	if err != nil {
		return nil, err
	}
	chain := append([]int{0}, adapters...)
	slices.Sort(chain)
	chain = append(chain, chain[len(chain)-1]+3)
	return chain, nil
}

func day10Part1(chain []int) (int, error) {
	var ones, threes int
	for i := 1; i < len(chain); i++ {
		switch d := chain[i] - chain[i-1]; d {
		case 1:
			ones++
		case 2:
		case 3:
			threes++
		default:
			return 0, fmt.Errorf("gap of %d jolts between %d and %d", d, chain[i-1], chain[i])
		}
	}
	return ones * threes, nil
}

func day10Part2(chain []int) int64 {
	memo := make(map[int]int64, len(chain))
	return arrangements(chain, 0, memo)
}

// arrangements counts the ways to reach the device from chain[i].
func arrangements(chain []int, i int, memo map[int]int64) int64 {
	if i == len(chain)-1 {
		return 1
	}
	if n, ok := memo[i]; ok {
		return n
	}
	var n int64
	for j := i + 1; j < len(chain) && chain[j]-chain[i] <= 3; j++ {
		n += arrangements(chain, j, memo)
	}
	memo[i] = n
	return n
}
