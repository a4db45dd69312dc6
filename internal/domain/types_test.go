package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	good := map[string]Date{
		"2020/7":     {2020, 7},
		"2020/day07": {2020, 7},
		"2020-25":    {2020, 25},
		" 2022/1 ":   {2022, 1},
		"2020/Day11": {2020, 11},
	}
	for in, want := range good {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "2020", "2020/0", "2020/26", "2014/1", "x/1", "2020/x"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}

func TestDateOrder(t *testing.T) {
	assert.Equal(t, "2020/day07", Date{2020, 7}.String())
	assert.True(t, Date{2020, 25}.Before(Date{2022, 1}))
	assert.True(t, Date{2020, 3}.Before(Date{2020, 12}))
	assert.False(t, Date{2020, 3}.Before(Date{2020, 3}))
}

func TestParsePart(t *testing.T) {
	for in, want := range map[string]Part{"1": Part1, "part1": Part1, "2": Part2, "part2": Part2} {
		got, err := ParsePart(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParsePart("3")
	assert.Error(t, err)
	assert.False(t, Part(3).Valid())
	assert.Equal(t, "part(3)", Part(3).String())
}

func TestRecord(t *testing.T) {
	var nilRec *Record
	_, ok := nilRec.Answer(Part1)
	assert.False(t, ok)

	r := &Record{Date: Date{2020, 1}}
	_, ok = r.Answer(Part2)
	assert.False(t, ok)
	r.Set(Part2, "241861950")
	a, ok := r.Answer(Part2)
	assert.True(t, ok)
	assert.Equal(t, "241861950", a)
}

func TestResultFailed(t *testing.T) {
	assert.False(t, Result{}.Failed())
	assert.False(t, Result{Err: fmt.Errorf("day 25: %w", ErrNotImplemented)}.Failed())
	assert.True(t, Result{Err: errors.New("bad input")}.Failed())
}

func TestMismatchString(t *testing.T) {
	d := Date{2020, 1}
	assert.Equal(t, "2020/day01 part1: want 514579, got 1", Mismatch{Date: d, Part: Part1, Want: "514579", Got: "1"}.String())
	assert.Equal(t, "2020/day01 part2: want 7, failed: boom", Mismatch{Date: d, Part: Part2, Want: "7", Err: errors.New("boom")}.String())
}
