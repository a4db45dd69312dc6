package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

func TestDay18(t *testing.T) {
	cases := []struct {
		expr         string
		part1, part2 string
	}{
		{"1 + 2 * 3 + 4 * 5 + 6", "71", "231"},
		{"1 + (2 * 3) + (4 * (5 + 6))", "51", "51"},
		{"2 * 3 + (4 * 5)", "26", "46"},
		{"5 + (8 * 3 + 9 + 3 * 4 * 3)", "437", "1445"},
		{"5 * 9 * (7 * 3 * 3 + 9 * 3 + (8 + 6 * 4))", "12240", "669060"},
		{"((2 + 4 * 9) * (6 + 9 * 8 + 6) + 6) + 2 + 4 * 2", "13632", "23340"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			assert.Equal(t, tc.part1, solve(t, 18, domain.Part1, tc.expr))
			assert.Equal(t, tc.part2, solve(t, 18, domain.Part2, tc.expr))
		})
	}
	assert.Equal(t, "97", solve(t, 18, domain.Part1, "1 + 2 * 3 + 4 * 5 + 6\n2 * 3 + (4 * 5)"))
}

func TestTokenize(t *testing.T) {
	toks, err := tokenize("12 * (3+45)")
	require.NoError(t, err)
	assert.Equal(t, []token{
		{val: 12, col: 1},
		{op: '*', col: 4},
		{op: '(', col: 6},
		{val: 3, col: 7},
		{op: '+', col: 8},
		{val: 45, col: 9},
		{op: ')', col: 11},
	}, toks)

	_, err = tokenize("1 + x")
	require.ErrorContains(t, err, "column 5")
}

func TestEvaluateErrors(t *testing.T) {
	prec := map[byte]int{'+': 1, '*': 1}
	cases := []struct {
		expr string
		want string
	}{
		{"(1 + 2", "missing )"},
		{"1 2", "column 3: want operator"},
		{"1 + )", "column 5: unexpected ')'"},
		{"1 +", "unexpected end"},
		{"1 + 2)", "column 6: unexpected ')'"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			toks, err := tokenize(tc.expr)
			require.NoError(t, err)
			_, err = evaluate(toks, prec)
			require.ErrorContains(t, err, tc.want)
		})
	}
}
