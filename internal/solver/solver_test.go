package solver

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

func sumDay() Day[[]int, int, string] {
	return Day[[]int, int, string]{
		Generate: func(input string) ([]int, error) {
			var out []int
			for _, f := range strings.Fields(input) {
				n, err := strconv.Atoi(f)
				if err != nil {
					return nil, err
				}
				out = append(out, n)
			}
			return out, nil
		},
		Part1: Func(func(in []int) int {
			s := 0
			for _, n := range in {
				s += n
			}
			return s
		}),
		Part2: func(in []int) (string, error) {
			if len(in) == 0 {
				return "", errors.New("empty")
			}
			return strconv.Itoa(in[len(in)-1]), nil
		},
	}
}

func TestDaySolve(t *testing.T) {
	ctx := context.Background()
	d := sumDay()

	cases := []struct {
		name  string
		part  domain.Part
		input string
		want  string
		err   string
	}{
		{"part1", domain.Part1, "1 2 3", "6", ""},
		{"part2", domain.Part2, "1 2 3", "3", ""},
		{"part2 error", domain.Part2, "", "", "empty"},
		{"generator error", domain.Part1, "1 x", "", "generator"},
		{"unknown part", domain.Part(7), "1", "", "unknown part"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, st, err := d.Solve(ctx, tc.part, tc.input)
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, st.Duration.Nanoseconds(), int64(0))
		})
	}
}

func TestDayNotImplemented(t *testing.T) {
	d := sumDay()
	d.Part2 = nil
	_, _, err := d.Solve(context.Background(), domain.Part2, "1")
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestDayRecoversPanic(t *testing.T) {
	d := Day[int, int, int]{
		Generate: func(string) (int, error) { return 0, nil },
		Part1:    Func(func(int) int { panic("boom") }),
	}
	_, _, err := d.Solve(context.Background(), domain.Part1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, ErrPanic)
}

func TestDayCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := sumDay().Solve(ctx, domain.Part1, "1")
	require.ErrorIs(t, err, context.Canceled)
}
