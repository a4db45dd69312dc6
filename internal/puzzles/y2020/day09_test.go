package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/generator"
)

const day09Example = `35
20
15
25
47
40
62
55
65
95
102
117
150
182
127
219
299
277
309
576`

func TestDay09(t *testing.T) {
	nums, err := day09Generate(day09Example)
	require.NoError(t, err)
	x := xmas{preamble: 5}

	got, err := x.firstInvalid(nums)
	require.NoError(t, err)
	assert.Equal(t, int64(127), got)

	got, err = x.weakness(nums)
	require.NoError(t, err)
	assert.Equal(t, int64(62), got)
}

func TestDay09Errors(t *testing.T) {
	x := xmas{preamble: 5}
	_, err := x.firstInvalid([]int64{1, 2, 3})
	require.Error(t, err)

	_, err = x.firstInvalid([]int64{1, 2, 3, 4, 5, 3, 9})
	require.ErrorIs(t, err, errNoAnswer)

	// 100 is invalid but no run of two or more adds up to it
	_, err = x.weakness([]int64{1, 2, 3, 4, 5, 100})
	require.ErrorIs(t, err, errNoAnswer)
}

func TestDay09GenerateRejectsNegatives(t *testing.T) {
	nums, err := day09Generate("3\n4\n7\n200\n")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 7, 200}, nums)

	_, err = day09Generate("3\n4\n7\n200\n-7\n")
	var pe *generator.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Line)
	assert.ErrorContains(t, err, "negative")
}

func TestValidPairNeedsDistinctNumbers(t *testing.T) {
	assert.False(t, valid([]int64{5, 5, 1}, 10))
	assert.True(t, valid([]int64{4, 6, 1}, 10))
}
