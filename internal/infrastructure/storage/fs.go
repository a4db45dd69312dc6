// Package storage keeps puzzle inputs and recorded answers on disk.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

// ErrNoRecord is returned by Load for a puzzle without recorded answers.
var ErrNoRecord = fmt.Errorf("no recorded answers: %w", os.ErrNotExist)

// FS stores one JSON record per puzzle under <dir>/<year>/dayNN.json.
type FS struct{ dir string }

var _ ports.Answers = (*FS)(nil)

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(d domain.Date) string {
	return filepath.Join(s.dir, strconv.Itoa(d.Year), fmt.Sprintf("day%02d.json", d.Day))
}

// dateFromPath recovers the date of a record file written by Save.
func dateFromPath(year, name string) (domain.Date, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return domain.Date{}, false
	}
	day, ok := strings.CutPrefix(strings.TrimSuffix(name, ".json"), "day")
	if !ok {
		return domain.Date{}, false
	}
	n, err := strconv.Atoi(day)
	if err != nil {
		return domain.Date{}, false
	}
	d := domain.Date{Year: y, Day: n}
	return d, d.Valid()
}

func (s *FS) Save(ctx context.Context, r *domain.Record) error {
	if r == nil || !r.Date.Valid() {
		return errors.New("invalid record: missing date")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// Ensure directory <dir>/<year> exists
	target := s.pathFor(r.Date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	return writeRecord(f, r)
}

// writeRecord encodes r to w and closes it. A failed close is reported even
// when the encode succeeded.
func writeRecord(w io.WriteCloser, r *domain.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (s *FS) Load(ctx context.Context, d domain.Date) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.pathFor(d))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", d, ErrNoRecord)
	}
	if err != nil {
		return nil, err
	}
	var out domain.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", s.pathFor(d), err)
	}
	// Date missing: the file name says which puzzle it is
	if !out.Date.Valid() {
		out.Date = d
	}
	return &out, nil
}

// List returns every readable record, oldest puzzle first. Files that do
// not parse are skipped.
func (s *FS) List(ctx context.Context) ([]domain.Record, error) {
	years, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.Record
	for _, y := range years {
		if !y.IsDir() {
			continue
		}
		ents, err := os.ReadDir(filepath.Join(s.dir, y.Name()))
		if err != nil {
			return nil, err
		}
		for _, e := range ents {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			d, ok := dateFromPath(y.Name(), e.Name())
			if !ok {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, y.Name(), e.Name()))
			if err != nil {
				continue
			}
			var r domain.Record
			if err := json.Unmarshal(data, &r); err != nil {
				continue
			}
			if !r.Date.Valid() {
				r.Date = d
			}
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b domain.Record) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		}
		return 0
	})
	return out, nil
}
