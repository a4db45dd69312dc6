package y2020

import (
	"fmt"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Encoding Error
func init() {
	registry.Register(2020, 9, xmas{preamble: 25}.day())
}

// xmas decodes the eXchange-Masking Addition System with a given preamble
// length.
type xmas struct{ preamble int }

func (x xmas) day() solver.Day[[]int64, int64, int64] {
	return solver.Day[[]int64, int64, int64]{
		Generate: day09Generate,
		Part1:    x.firstInvalid,
		Part2:    x.weakness,
	}
}

// day09Generate reads one number per line. The run search in weakness
// relies on every number being non-negative.
func day09Generate(input string) ([]int64, error) {
	return generator.MapLines(input, func(line string) (int64, error) {
		n, err := generator.ParseInt[int64](line)
		if err == nil && n < 0 {
			err = fmt.Errorf("negative number %d", n)
		}
		return n, err
	})
}

// valid reports whether n is the sum of two different numbers of window.
func valid(window []int64, n int64) bool {
	for i, a := range window {
		for _, b := range window[i+1:] {
			if a != b && a+b == n {
				return true
			}
		}
	}
	return false
}

func (x xmas) firstInvalid(nums []int64) (int64, error) {
	if len(nums) <= x.preamble {
		return 0, fmt.Errorf("need more than %d numbers, have %d", x.preamble, len(nums))
	}
	for i := x.preamble; i < len(nums); i++ {
		if !valid(nums[i-x.preamble:i], nums[i]) {
			return nums[i], nil
		}
	}
	return 0, errNoAnswer
}

// weakness finds a contiguous run of at least two numbers adding up to the
// first invalid number and returns its smallest plus largest element.
func (x xmas) weakness(nums []int64) (int64, error) {
	target, err := x.firstInvalid(nums)
	if err != nil {
		return 0, err
	}
	lo, sum := 0, int64(0)
	for hi, n := range nums {
		sum += n
		for sum > target && lo < hi {
			sum -= nums[lo]
			lo++
		}
		if sum == target && hi > lo {
			small, large := nums[lo], nums[lo]
			for _, v := range nums[lo : hi+1] {
				small = min(small, v)
				large = max(large, v)
			}
			return small + large, nil
		}
	}
	return 0, errNoAnswer
}
