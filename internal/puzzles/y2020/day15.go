package y2020

import (
	"fmt"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Rambunctious Recitation
func init() {
	registry.Register(2020, 15, solver.Day[[]int, int, int]{
		Generate: day15Generate,
		Part1:    func(start []int) (int, error) { return recite(start, 2020, newSpokenSlice) },
		Part2:    func(start []int) (int, error) { return recite(start, 30_000_000, newSpokenSlice) },
	})
}

func day15Generate(input string) ([]int, error) {
	lines := generator.Lines(input)
	if len(lines) != 1 {
		return nil, fmt.Errorf("want one line of starting numbers, have %d", len(lines))
	}
	start, err := generator.IntList[int](lines[0], ",")
	if err != nil {
		return nil, &generator.ParseError{Line: 1, Text: lines[0], Err: err}
	}
	for _, n := range start {
		if n < 0 {
			return nil, &generator.ParseError{Line: 1, Text: lines[0], Err: fmt.Errorf("negative number %d", n)}
		}
	}
	return start, nil
}

// spoken remembers the last turn (1-based) each number was spoken on; zero
// means never.
type spoken interface {
	swap(n, turn int) (prev int)
}

type spokenMap map[int]int

func (m spokenMap) swap(n, turn int) int {
	prev := m[n]
	m[n] = turn
	return prev
}

type spokenTurns []int32

func (s spokenTurns) swap(n, turn int) int {
	prev := s[n]
	s[n] = int32(turn)
	return int(prev)
}

// newSpokenMap and newSpokenSlice are the two memory strategies. The slice is
// sized so every number that can come up has a slot: a number spoken after
// the starting ones is always below the turn count.
func newSpokenMap(int) spoken { return spokenMap{} }

func newSpokenSlice(size int) spoken { return make(spokenTurns, size) }

// recite plays the memory game and returns the number spoken on turn nth.
func recite(start []int, nth int, memory func(size int) spoken) (int, error) {
	if len(start) == 0 {
		return 0, generator.ErrEmpty
	}
	if nth <= len(start) {
		return start[nth-1], nil
	}
	size := nth
	for _, n := range start {
		size = max(size, n+1)
	}
	seen := memory(size)
	for i, n := range start[:len(start)-1] {
		seen.swap(n, i+1)
	}
	last := start[len(start)-1]
	for turn := len(start); turn < nth; turn++ {
		if prev := seen.swap(last, turn); prev == 0 {
			last = 0
		} else {
			last = turn - prev
		}
	}
	return last, nil
}
