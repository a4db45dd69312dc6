package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/solver"
)

func TestDay25(t *testing.T) {
	assert.Equal(t, "14897079", solve(t, 25, domain.Part1, "5764801\n17807724"))
	require.ErrorIs(t, solveErr(t, 25, domain.Part2, "5764801\n17807724"), solver.ErrNotImplemented)
}

func TestLoopSize(t *testing.T) {
	for key, want := range map[int64]int64{5764801: 8, 17807724: 11} {
		got, err := loopSize(key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, int64(14897079), transform(5764801, 11))
	assert.Equal(t, int64(14897079), transform(17807724, 8))

	_, err := loopSize(handshakeModulus)
	require.ErrorIs(t, err, errNoAnswer)
}
