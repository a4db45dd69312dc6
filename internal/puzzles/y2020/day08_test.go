package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

const day08Example = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6`

func TestDay08(t *testing.T) {
	assert.Equal(t, "5", solve(t, 8, domain.Part1, day08Example))
	assert.Equal(t, "8", solve(t, 8, domain.Part2, day08Example))
}

func TestBoot(t *testing.T) {
	cases := []struct {
		name string
		prog string
		acc  int
		res  bootResult
	}{
		{"loops", day08Example, 5, bootLooped},
		{"terminates", "acc +2\nnop +0\nacc -1", 1, bootTerminated},
		{"jumps past end", "acc +1\njmp +5", 1, bootOutOfRange},
		{"jumps before start", "acc +1\njmp -2", 1, bootOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := day08Generate(tc.prog)
			require.NoError(t, err)
			acc, res := boot(prog)
			assert.Equal(t, tc.acc, acc)
			assert.Equal(t, tc.res, res)
		})
	}
}

func TestDay08Errors(t *testing.T) {
	require.ErrorIs(t, solveErr(t, 8, domain.Part1, "acc +2\nnop +0"), errHalted)
	require.ErrorIs(t, solveErr(t, 8, domain.Part2, "jmp +0\njmp -1\njmp -2"), errNoAnswer)
	for _, bad := range []string{"nop 0", "mov +1", "acc", "acc +x"} {
		require.Error(t, solveErr(t, 8, domain.Part1, bad), bad)
	}
}
