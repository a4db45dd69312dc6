package y2020

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/aoc/internal/domain"
)

const day06Example = `abc

a
b
c

ab
ac

a
a
a
a

b`

func TestDay06(t *testing.T) {
	assert.Equal(t, "11", solve(t, 6, domain.Part1, day06Example))
	assert.Equal(t, "6", solve(t, 6, domain.Part2, day06Example))
}

func TestDay06CRLF(t *testing.T) {
	crlf := strings.ReplaceAll(day06Example, "\n", "\r\n") + "\r\n"
	assert.Equal(t, "11", solve(t, 6, domain.Part1, crlf))
	assert.Equal(t, "6", solve(t, 6, domain.Part2, crlf))
}
