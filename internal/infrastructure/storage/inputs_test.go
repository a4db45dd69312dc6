package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

func writeInput(t *testing.T, dir, name, body string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestInputsRead(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeInput(t, dir, "2020/day7.txt", "unpadded\n")
	writeInput(t, dir, "2020/day08.txt", "padded\n")
	in := NewInputs(dir)

	got, err := in.Read(ctx, domain.Date{Year: 2020, Day: 7})
	require.NoError(t, err)
	assert.Equal(t, "unpadded\n", got)

	got, err = in.Read(ctx, domain.Date{Year: 2020, Day: 8})
	require.NoError(t, err)
	assert.Equal(t, "padded\n", got)
	assert.Equal(t, filepath.Join(dir, "2020", "day08.txt"), in.Path(domain.Date{Year: 2020, Day: 8}))

	assert.True(t, in.Has(domain.Date{Year: 2020, Day: 7}))
	assert.False(t, in.Has(domain.Date{Year: 2020, Day: 9}))
}

func TestInputsMissing(t *testing.T) {
	in := NewInputs(t.TempDir())
	d := domain.Date{Year: 2022, Day: 1}
	_, err := in.Read(context.Background(), d)
	require.ErrorIs(t, err, ErrNoInput)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), in.Path(d))
}

func TestInputsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewInputs(t.TempDir()).Read(ctx, domain.Date{Year: 2022, Day: 1})
	require.ErrorIs(t, err, context.Canceled)
}
