// Package generator turns raw puzzle input into the primitive values the
// puzzles work on. Every helper tolerates CRLF line endings.
package generator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseError locates a malformed line of input.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrEmpty is returned when an input holds no data at all.
var ErrEmpty = errors.New("empty input")

// Normalize converts CRLF to LF and drops trailing newlines.
func Normalize(input string) string {
	return strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
}

// Lines splits input into lines.
func Lines(input string) []string {
	s := Normalize(input)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits input into groups separated by blank lines.
func Blocks(input string) []string {
	s := Normalize(input)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, b := range strings.Split(s, "\n\n") {
		if b = strings.Trim(b, "\n"); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// MapLines applies parse to every line, reporting the first failure as a
// *ParseError.
func MapLines[T any](input string, parse func(line string) (T, error)) ([]T, error) {
	lines := Lines(input)
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	out := make([]T, 0, len(lines))
	for i, l := range lines {
		v, err := parse(l)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: l, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Ints parses one integer per line.
func Ints[T constraints.Integer](input string) ([]T, error) {
	return MapLines(input, ParseInt[T])
}

// IntList parses a single line of integers separated by sep.
func IntList[T constraints.Integer](line, sep string) ([]T, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmpty
	}
	fields := strings.Split(line, sep)
	out := make([]T, 0, len(fields))
	for i, f := range fields {
		v, err := ParseInt[T](f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseInt parses s as a base-10 integer of type T.
func ParseInt[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, bitSize(zero))
		return T(v), err
	}
	v, err := strconv.ParseUint(s, 10, bitSize(zero))
	return T(v), err
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

func bitSize[T constraints.Integer](v T) int {
	switch any(v).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	default:
		return 64
	}
}

// Grid parses a rectangular block of characters.
func Grid(input string) ([][]byte, error) {
	lines := Lines(input)
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	g := make([][]byte, len(lines))
	for i, l := range lines {
		if len(l) != len(lines[0]) {
			return nil, &ParseError{Line: i + 1, Text: l, Err: fmt.Errorf("row width %d, want %d", len(l), len(lines[0]))}
		}
		g[i] = []byte(l)
	}
	return g, nil
}
