package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

type constSolver string

func (c constSolver) Solve(context.Context, domain.Part, string) (string, ports.Stats, error) {
	return string(c), ports.Stats{}, nil
}

func TestRegistryOrdersDates(t *testing.T) {
	r := New()
	r.Register(domain.Date{Year: 2022, Day: 1}, constSolver("c"))
	r.Register(domain.Date{Year: 2020, Day: 10}, constSolver("b"))
	r.Register(domain.Date{Year: 2020, Day: 2}, constSolver("a"))

	assert.Equal(t, []domain.Date{{Year: 2020, Day: 2}, {Year: 2020, Day: 10}, {Year: 2022, Day: 1}}, r.Year(0))
	assert.Empty(t, r.Year(2021))
	assert.Equal(t, []domain.Date{{Year: 2020, Day: 2}, {Year: 2020, Day: 10}}, r.Year(2020))
	assert.Equal(t, []int{2020, 2022}, r.Years())

	s, err := r.Get(domain.Date{Year: 2020, Day: 10})
	require.NoError(t, err)
	got, _, _ := s.Solve(context.Background(), domain.Part1, "")
	assert.Equal(t, "b", got)

	_, err = r.Get(domain.Date{Year: 2020, Day: 11})
	require.ErrorIs(t, err, ErrNotRegistered)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := New()
	d := domain.Date{Year: 2020, Day: 1}
	r.Register(d, constSolver("x"))
	assert.Panics(t, func() { r.Register(d, constSolver("y")) })
	assert.Panics(t, func() { r.Register(domain.Date{Year: 2020, Day: 26}, constSolver("z")) })
}
