package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

var (
	// ErrNotImplemented is returned for a part that has no solution.
	ErrNotImplemented = domain.ErrNotImplemented
	// ErrPanic is wrapped by the error of a part that panicked.
	ErrPanic = domain.ErrPanic
	// ErrUnknownPart is returned for a part other than Part1 or Part2.
	ErrUnknownPart = errors.New("unknown part")
)

// Day couples a generator, which parses the raw input, with the two parts
// that consume its output. A nil part is reported as ErrNotImplemented.
type Day[T, R1, R2 any] struct {
	Generate func(input string) (T, error)
	Part1    func(in T) (R1, error)
	Part2    func(in T) (R2, error)
}

var _ ports.Solver = Day[int, int, int]{}

// Solve runs the generator and then the requested part. The input is parsed
// on every call so the two parts are timed independently.
func (d Day[T, R1, R2]) Solve(ctx context.Context, part domain.Part, input string) (answer string, st ports.Stats, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w in %s: %v\n%s", ErrPanic, part, r, debug.Stack())
		}
		st = ports.Stats{Duration: time.Since(start)}
	}()
	if !part.Valid() {
		return "", st, fmt.Errorf("%w: %d", ErrUnknownPart, int(part))
	}
	if part == domain.Part1 && d.Part1 == nil || part == domain.Part2 && d.Part2 == nil {
		return "", st, ErrNotImplemented
	}
	if err := ctx.Err(); err != nil {
		return "", st, err
	}
	in, err := d.Generate(input)
	if err != nil {
		return "", st, fmt.Errorf("generator: %w", err)
	}
	switch part {
	case domain.Part1:
		return render(d.Part1(in))
	default:
		return render(d.Part2(in))
	}
}

func render[R any](v R, err error) (string, ports.Stats, error) {
	if err != nil {
		return "", ports.Stats{}, err
	}
	return fmt.Sprint(v), ports.Stats{}, nil
}

// Func wraps a part that cannot fail.
func Func[T, R any](f func(T) R) func(T) (R, error) {
	return func(in T) (R, error) { return f(in), nil }
}
