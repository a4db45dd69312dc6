// Package usecase runs registered puzzles against their inputs and checks
// the answers against the recorded ones.
package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

type Service struct {
	Registry  ports.Registry
	Inputs    ports.Inputs
	Answers   ports.Answers
	Validator ports.Validator
	Observer  ports.Observer // optional
	Logger    *slog.Logger   // optional
	// Workers bounds how many days RunAll and Verify solve at once.
	Workers int

	now func() time.Time
}

func NewService(r ports.Registry, in ports.Inputs, a ports.Answers, v ports.Validator) *Service {
	return &Service{Registry: r, Inputs: in, Answers: a, Validator: v, Workers: 1, now: time.Now}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) clock() time.Time {
	if u.now == nil {
		return time.Now()
	}
	return u.now()
}

func (u *Service) log() *slog.Logger {
	if u.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return u.Logger
}

// Run solves the given parts of one puzzle, both when none are given. A
// part that fails is reported in its Result; the returned error is for
// problems that stop the day as a whole, such as a missing input.
func (u *Service) Run(ctx context.Context, d domain.Date, parts ...domain.Part) ([]domain.Result, error) {
	if u.Registry == nil || u.Inputs == nil {
		return nil, errNotConfigured
	}
	s, err := u.Registry.Get(d)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		parts = domain.Parts()
	}
	input, err := u.Inputs.Read(ctx, d)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Result, 0, len(parts))
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		answer, st, err := s.Solve(ctx, p, input)
		if errors.Is(err, domain.ErrPanic) {
			err = fmt.Errorf("%s: %w", d, err)
		}
		res := domain.Result{Date: d, Part: p, Answer: answer, Duration: st.Duration, Err: err}
		switch {
		case res.Failed():
			u.log().Warn("part failed", "date", d, "part", p, "dur", st.Duration, "err", err)
		case err != nil:
			u.log().Debug("part skipped", "date", d, "part", p, "err", err)
		default:
			u.log().Info("solved", "date", d, "part", p, "answer", answer, "dur", st.Duration)
		}
		if u.Observer != nil {
			u.Observer.Observe(res)
		}
		out = append(out, res)
	}
	return out, nil
}

// Dates selects the registered puzzles of year, or of every year when year
// is zero. A year without puzzles is an error.
func (u *Service) Dates(year int) ([]domain.Date, error) {
	if u.Registry == nil {
		return nil, errNotConfigured
	}
	dates := u.Registry.Year(year)
	if year != 0 && len(dates) == 0 {
		return nil, fmt.Errorf("no puzzles for %d, have %v: %w", year, u.Registry.Years(), domain.ErrNotRegistered)
	}
	return dates, nil
}

// RunAll solves every registered puzzle of year (every year when zero).
// Days without an input file are skipped. A day failing otherwise does not
// stop the others: its error is set on its results.
func (u *Service) RunAll(ctx context.Context, year int) ([]domain.Result, error) {
	dates, err := u.Dates(year)
	if err != nil {
		return nil, err
	}
	results, _, err := u.runDates(ctx, dates)
	return results, err
}

// runDates runs dates on at most Workers goroutines and returns the results
// sorted by date and part, along with the dates that had no input.
func (u *Service) runDates(ctx context.Context, dates []domain.Date) ([]domain.Result, []domain.Date, error) {
	var (
		mu      sync.Mutex
		results []domain.Result
		missing []domain.Date
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(u.Workers, 1))
	for _, d := range dates {
		g.Go(func() error {
			res, err := u.Run(gctx, d)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				u.log().Info("skipping, no input", "date", d, "path", u.Inputs.Path(d))
				mu.Lock()
				missing = append(missing, d)
				mu.Unlock()
				return nil
			case gctx.Err() != nil:
				return gctx.Err()
			case err != nil:
				res = nil
				for _, p := range domain.Parts() {
					res = append(res, domain.Result{Date: d, Part: p, Err: err})
				}
			}
			mu.Lock()
			results = append(results, res...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	slices.SortFunc(results, compareResults)
	slices.SortFunc(missing, compareDates)
	return results, missing, nil
}

func compareDates(a, b domain.Date) int {
	return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Day, b.Day))
}

func compareResults(a, b domain.Result) int {
	return cmp.Or(compareDates(a.Date, b.Date), cmp.Compare(a.Part, b.Part))
}

// Record stores the successful answers of results as known-good, merging
// them into any record already present.
func (u *Service) Record(ctx context.Context, results []domain.Result) ([]domain.Record, error) {
	if u.Answers == nil {
		return nil, errNotConfigured
	}
	byDate := map[domain.Date][]domain.Result{}
	var dates []domain.Date
	for _, r := range results {
		if r.Err != nil || r.Answer == "" {
			continue
		}
		if _, seen := byDate[r.Date]; !seen {
			dates = append(dates, r.Date)
		}
		byDate[r.Date] = append(byDate[r.Date], r)
	}
	slices.SortFunc(dates, compareDates)
	out := make([]domain.Record, 0, len(dates))
	for _, d := range dates {
		rec, err := u.Answers.Load(ctx, d)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			rec = &domain.Record{Date: d}
		case err != nil:
			return out, err
		}
		for _, r := range byDate[d] {
			if old, ok := rec.Answer(r.Part); ok && old != r.Answer {
				u.log().Warn("replacing recorded answer", "date", d, "part", r.Part, "old", old, "new", r.Answer)
			}
			rec.Set(r.Part, r.Answer)
		}
		rec.RecordedAt = u.clock().Unix()
		if err := u.Answers.Save(ctx, rec); err != nil {
			return out, fmt.Errorf("%s: %w", d, err)
		}
		u.log().Info("recorded", "date", d, "part1", rec.Part1, "part2", rec.Part2)
		out = append(out, *rec)
	}
	return out, nil
}

// Report is the outcome of a Verify run.
type Report struct {
	Results    []domain.Result
	Mismatches []domain.Mismatch
	// Skipped lists puzzles without recorded answers or without input.
	Skipped []domain.Date

	records map[domain.Date]*domain.Record
}

// OK reports whether every checked answer matched.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }

// Recorded reports whether res had a recorded answer to be checked against.
func (r *Report) Recorded(res domain.Result) bool {
	_, ok := r.records[res.Date].Answer(res.Part)
	return ok
}

// Checked counts the results that were compared with a recorded answer.
func (r *Report) Checked() int {
	n := 0
	for _, res := range r.Results {
		if r.Recorded(res) {
			n++
		}
	}
	return n
}

// Verify runs dates that have recorded answers and compares the results
// with them.
func (u *Service) Verify(ctx context.Context, dates []domain.Date) (*Report, error) {
	if u.Answers == nil || u.Validator == nil {
		return nil, errNotConfigured
	}
	records := map[domain.Date]*domain.Record{}
	rep := &Report{records: records}
	var run []domain.Date
	for _, d := range dates {
		rec, err := u.Answers.Load(ctx, d)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			u.log().Debug("no recorded answers", "date", d)
			rep.Skipped = append(rep.Skipped, d)
			continue
		case err != nil:
			return nil, err
		}
		records[d] = rec
		run = append(run, d)
	}
	results, missing, err := u.runDates(ctx, run)
	if err != nil {
		return nil, err
	}
	rep.Results = results
	rep.Skipped = append(rep.Skipped, missing...)
	slices.SortFunc(rep.Skipped, compareDates)

	for _, d := range run {
		var mine []domain.Result
		for _, r := range results {
			if r.Date == d {
				mine = append(mine, r)
			}
		}
		if len(mine) == 0 {
			continue
		}
		mm, err := u.Validator.Validate(ctx, records[d], mine)
		if err != nil {
			return nil, err
		}
		for _, m := range mm {
			u.log().Warn("mismatch", "date", m.Date, "part", m.Part, "want", m.Want, "got", m.Got, "err", m.Err)
		}
		rep.Mismatches = append(rep.Mismatches, mm...)
	}
	return rep, nil
}

// List describes every registered puzzle of year (every year when zero).
func (u *Service) List(ctx context.Context, year int) ([]domain.DayInfo, error) {
	if u.Inputs == nil || u.Answers == nil {
		return nil, errNotConfigured
	}
	dates, err := u.Dates(year)
	if err != nil {
		return nil, err
	}
	recs, err := u.Answers.List(ctx)
	if err != nil {
		return nil, err
	}
	recorded := make(map[domain.Date]bool, len(recs))
	for _, r := range recs {
		recorded[r.Date] = r.Part1 != "" || r.Part2 != ""
	}
	out := make([]domain.DayInfo, 0, len(dates))
	for _, d := range dates {
		out = append(out, domain.DayInfo{Date: d, HasInput: u.Inputs.Has(d), Recorded: recorded[d]})
	}
	return out, nil
}
