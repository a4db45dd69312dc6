package ports

import (
	"context"
	"time"

	"svw.info/aoc/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Duration time.Duration
}

// Solver parses a puzzle input and answers one of its parts.
type Solver interface {
	Solve(ctx context.Context, part domain.Part, input string) (string, Stats, error)
}

// Registry resolves puzzles by date.
type Registry interface {
	Get(d domain.Date) (Solver, error)
	// Year lists the registered dates of one event, or of all when zero.
	Year(year int) []domain.Date
	Years() []int
}

// Inputs reads puzzle inputs.
type Inputs interface {
	Read(ctx context.Context, d domain.Date) (string, error)
	Has(d domain.Date) bool
	Path(d domain.Date) string
}

// Answers persists and retrieves known-good answers as JSON.
type Answers interface {
	Save(ctx context.Context, r *domain.Record) error
	Load(ctx context.Context, d domain.Date) (*domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
}

// Validator compares results against a record.
type Validator interface {
	Validate(ctx context.Context, rec *domain.Record, results []domain.Result) ([]domain.Mismatch, error)
}

// Observer is notified of every finished part.
type Observer interface {
	Observe(r domain.Result)
}
