package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

// ErrNoInput is returned when a puzzle's input file is missing.
var ErrNoInput = fmt.Errorf("no puzzle input: %w", os.ErrNotExist)

// Inputs reads puzzle inputs laid out as <dir>/<year>/day<N>.txt. A
// zero-padded day07.txt is accepted as well.
type Inputs struct{ dir string }

var _ ports.Inputs = (*Inputs)(nil)

func NewInputs(dir string) *Inputs { return &Inputs{dir: dir} }

func (in *Inputs) candidates(d domain.Date) []string {
	base := filepath.Join(in.dir, strconv.Itoa(d.Year))
	return []string{
		filepath.Join(base, fmt.Sprintf("day%d.txt", d.Day)),
		filepath.Join(base, fmt.Sprintf("day%02d.txt", d.Day)),
	}
}

// Path returns the file d is read from: the first candidate that exists,
// otherwise the unpadded name.
func (in *Inputs) Path(d domain.Date) string {
	paths := in.candidates(d)
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return paths[0]
}

func (in *Inputs) Has(d domain.Date) bool {
	_, err := os.Stat(in.Path(d))
	return err == nil
}

func (in *Inputs) Read(ctx context.Context, d domain.Date) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p := in.Path(d)
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%s (%s): %w", d, p, ErrNoInput)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
