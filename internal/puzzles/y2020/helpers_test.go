package y2020

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/registry"
)

// solve runs one registered 2020 part over input.
func solve(t *testing.T, day int, part domain.Part, input string) string {
	t.Helper()
	s, err := registry.Default.Get(domain.Date{Year: 2020, Day: day})
	require.NoError(t, err)
	got, _, err := s.Solve(context.Background(), part, input)
	require.NoError(t, err)
	return got
}

// solveErr runs one registered 2020 part and returns its error.
func solveErr(t *testing.T, day int, part domain.Part, input string) error {
	t.Helper()
	s, err := registry.Default.Get(domain.Date{Year: 2020, Day: day})
	require.NoError(t, err)
	_, _, err = s.Solve(context.Background(), part, input)
	return err
}
