package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/generator"
)

const day01Example = `1721
979
366
299
675
1456`

func TestDay01(t *testing.T) {
	assert.Equal(t, "514579", solve(t, 1, domain.Part1, day01Example))
	assert.Equal(t, "241861950", solve(t, 1, domain.Part2, day01Example))
}

func TestDay01NoPair(t *testing.T) {
	require.ErrorIs(t, solveErr(t, 1, domain.Part1, "1\n2\n3"), errNoAnswer)
	require.ErrorIs(t, solveErr(t, 1, domain.Part2, "1\n2\n3"), errNoAnswer)
}

func TestDay01SameEntryTwice(t *testing.T) {
	// 1010 alone must not pair with itself.
	_, _, ok := pairSum([]int{1010, 5}, expenseTarget)
	assert.False(t, ok)
	a, b, ok := pairSum([]int{1010, 5, 1010}, expenseTarget)
	require.True(t, ok)
	assert.Equal(t, [2]int{1010, 1010}, [2]int{a, b})
}

func TestDay01BadEntry(t *testing.T) {
	var pe *generator.ParseError
	require.ErrorAs(t, solveErr(t, 1, domain.Part1, "1721\nabc"), &pe)
	assert.Equal(t, 2, pe.Line)
}
