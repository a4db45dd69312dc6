package y2020

import (
	"fmt"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Toboggan Trajectory
func init() {
	registry.Register(2020, 3, solver.Day[[][]byte, int, int]{
		Generate: day03Generate,
		Part1:    solver.Func(day03Part1),
		Part2:    solver.Func(day03Part2),
	})
}

type slope struct{ right, down int }

var tobogganSlopes = []slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

func day03Generate(input string) ([][]byte, error) {
	g, err := generator.Grid(input)
	if err != nil {
		return nil, err
	}
	for y, row := range g {
		for x, c := range row {
			if c != '.' && c != '#' {
				return nil, &generator.ParseError{Line: y + 1, Text: string(row), Err: fmt.Errorf("unexpected %q at column %d", c, x+1)}
			}
		}
	}
	return g, nil
}

// TreesOnSlope counts the trees hit going right/down from the top-left
// corner. The map repeats to the right.
func TreesOnSlope(grid [][]byte, right, down int) int {
	trees := 0
	x := 0
	for y := 0; y < len(grid); y += down {
		row := grid[y]
		if row[x%len(row)] == '#' {
			trees++
		}
		x += right
	}
	return trees
}

func day03Part1(grid [][]byte) int { return TreesOnSlope(grid, 3, 1) }

func day03Part2(grid [][]byte) int {
	product := 1
	for _, s := range tobogganSlopes {
		product *= TreesOnSlope(grid, s.right, s.down)
	}
	return product
}
