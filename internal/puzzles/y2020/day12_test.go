package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

const day12Example = `F10
N3
F7
R90
F11`

func TestDay12(t *testing.T) {
	assert.Equal(t, "25", solve(t, 12, domain.Part1, day12Example))
	assert.Equal(t, "286", solve(t, 12, domain.Part2, day12Example))
}

func TestVecLeft(t *testing.T) {
	v := vec{10, 4}
	assert.Equal(t, vec{-4, 10}, v.left(1))
	assert.Equal(t, vec{-10, -4}, v.left(2))
	assert.Equal(t, vec{4, -10}, v.left(-1))
	assert.Equal(t, v, v.left(4))
}

func TestDay12Errors(t *testing.T) {
	for _, bad := range []string{"R45", "X10", "F", "Fx"} {
		require.Error(t, solveErr(t, 12, domain.Part1, bad), bad)
	}
}
