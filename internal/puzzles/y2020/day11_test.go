package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

const day11Example = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL`

func TestDay11(t *testing.T) {
	assert.Equal(t, "37", solve(t, 11, domain.Part1, day11Example))
	assert.Equal(t, "26", solve(t, 11, domain.Part2, day11Example))
}

func TestSeatNeighboursInSight(t *testing.T) {
	l, err := day11Generate(`.......#.
...#.....
.#.......
.........
..#L....#
....#....
.........
#........
...#.....`)
	require.NoError(t, err)
	assert.Len(t, l.neighbours(true)[4*l.w+3], 8)
	assert.Len(t, l.neighbours(false)[4*l.w+3], 2)

	l, err = day11Generate(`.............
.L.L.#.#.#.#.
.............`)
	require.NoError(t, err)
	assert.Equal(t, []int{1*l.w + 3}, l.neighbours(true)[1*l.w+1])
}

func TestDay11RejectsUnknownCells(t *testing.T) {
	require.Error(t, solveErr(t, 11, domain.Part1, "L.L\nLxL"))
}
