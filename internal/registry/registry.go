// Package registry maps puzzle dates to their solvers. Year packages add
// themselves to Default from init.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

// ErrNotRegistered is returned for a date with no solver.
var ErrNotRegistered = domain.ErrNotRegistered

// Registry is a concurrency-safe set of solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[domain.Date]ports.Solver
}

var _ ports.Registry = (*Registry)(nil)

// New returns an empty registry.
func New() *Registry {
	return &Registry{solvers: make(map[domain.Date]ports.Solver)}
}

// Default is the registry year packages register with.
var Default = New()

// Register adds s under d. It panics on an invalid or duplicate date.
func (r *Registry) Register(d domain.Date, s ports.Solver) {
	if !d.Valid() {
		panic(fmt.Sprintf("registry: invalid date %s", d))
	}
	if s == nil {
		panic(fmt.Sprintf("registry: nil solver for %s", d))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.solvers[d]; dup {
		panic(fmt.Sprintf("registry: %s registered twice", d))
	}
	r.solvers[d] = s
}

// Register adds s to Default.
func Register(year, day int, s ports.Solver) {
	Default.Register(domain.Date{Year: year, Day: day}, s)
}

// Get returns the solver of d, or an error wrapping ErrNotRegistered.
func (r *Registry) Get(d domain.Date) (ports.Solver, error) {
	r.mu.RLock()
	s, ok := r.solvers[d]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", d, ErrNotRegistered)
	}
	return s, nil
}

// dates returns every registered date, oldest first.
func (r *Registry) dates() []domain.Date {
	r.mu.RLock()
	out := make([]domain.Date, 0, len(r.solvers))
	for d := range r.solvers {
		out = append(out, d)
	}
	r.mu.RUnlock()
	slices.SortFunc(out, compareDates)
	return out
}

// Year returns the registered dates of one event. Year 0 means all.
func (r *Registry) Year(year int) []domain.Date {
	all := r.dates()
	if year == 0 {
		return all
	}
	return slices.DeleteFunc(all, func(d domain.Date) bool { return d.Year != year })
}

// Years lists the events with at least one registered day.
func (r *Registry) Years() []int {
	var out []int
	for _, d := range r.dates() {
		if len(out) == 0 || out[len(out)-1] != d.Year {
			out = append(out, d.Year)
		}
	}
	return out
}

func compareDates(a, b domain.Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	}
	return 0
}
