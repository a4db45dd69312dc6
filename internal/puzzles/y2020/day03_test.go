package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

const day03Example = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#`

func TestDay03(t *testing.T) {
	assert.Equal(t, "7", solve(t, 3, domain.Part1, day03Example))
	assert.Equal(t, "336", solve(t, 3, domain.Part2, day03Example))
}

func TestTreesOnSlope(t *testing.T) {
	grid, err := day03Generate(day03Example)
	require.NoError(t, err)
	want := []int{2, 7, 3, 4, 2}
	for i, s := range tobogganSlopes {
		assert.Equal(t, want[i], TreesOnSlope(grid, s.right, s.down), "right %d down %d", s.right, s.down)
	}
}

func TestDay03RejectsUnknownSquares(t *testing.T) {
	require.Error(t, solveErr(t, 3, domain.Part1, "..#\n.X."))
	require.Error(t, solveErr(t, 3, domain.Part1, "..#\n.#"))
}
