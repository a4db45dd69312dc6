package solver

import (
	"context"
	"errors"
	"fmt"
)

// ExactCover implements Algorithm X / Dancing Links over caller-defined
// constraint columns. Each row covers a set of columns; a solution is a set
// of rows covering every column exactly once.
type ExactCover struct {
	cols   []*column
	rows   int
	sol    []*node
	nodes  int
	active int // number of active (uncovered) columns
}

// ErrNoCover is returned when no set of rows covers every column.
var ErrNoCover = errors.New("no exact cover")

// ErrAmbiguousCover is returned when more than one exact cover exists.
var ErrAmbiguousCover = errors.New("exact cover is not unique")

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int
}

type column struct {
	node
	size   int
	name   int
	active bool
}

// NewExactCover builds an empty matrix with n constraint columns.
func NewExactCover(n int) *ExactCover {
	x := &ExactCover{cols: make([]*column, n), active: n}
	for i := range n {
		c := &column{name: i, active: true}
		c.up = &c.node
		c.down = &c.node
		x.cols[i] = c
	}
	return x
}

// AddRow appends a candidate row covering cols and returns its index.
func (x *ExactCover) AddRow(cols ...int) (int, error) {
	row := x.rows
	if len(cols) == 0 {
		return 0, fmt.Errorf("row %d covers no columns", row)
	}
	for _, id := range cols {
		if id < 0 || id >= len(x.cols) {
			return 0, fmt.Errorf("row %d: column %d out of range", row, id)
		}
	}
	var first, prev *node
	for _, id := range cols {
		col := x.cols[id]
		n := &node{col: col, rowIdx: row}
		// vertical insert (at bottom)
		n.down = &col.node
		n.up = col.node.up
		col.node.up.down = n
		col.node.up = n
		col.size++
		if first == nil {
			first = n
			n.left = n
			n.right = n
		} else {
			n.left = prev
			n.right = prev.right
			prev.right.left = n
			prev.right = n
		}
		prev = n
	}
	x.rows++
	return row, nil
}

func (x *ExactCover) cover(col *column) {
	if col.active {
		col.active = false
		x.active--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (x *ExactCover) uncover(col *column) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		x.active++
	}
}

// choose the active column with the smallest size
func (x *ExactCover) chooseColumn() *column {
	var best *column
	for _, c := range x.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (x *ExactCover) search(ctx context.Context, k, want int, found *[][]int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	if x.active == 0 {
		rows := make([]int, k)
		for i := range k {
			rows[i] = x.sol[i].rowIdx
		}
		*found = append(*found, rows)
		return len(*found) >= want
	}

	c := x.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	x.cover(c)
	for r := c.down; r != &c.node; r = r.down {
		x.nodes++
		if k < len(x.sol) {
			x.sol[k] = r
		} else {
			x.sol = append(x.sol, r)
		}
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				x.cover(j.col)
			}
		}
		stop := x.search(ctx, k+1, want, found)
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			x.uncover(j.col)
		}
		if stop {
			x.uncover(c)
			return true
		}
	}
	x.uncover(c)
	return false
}

// Solve searches for up to want solutions and returns the row indices of
// each, along with the number of search nodes visited.
func (x *ExactCover) Solve(ctx context.Context, want int) ([][]int, int, error) {
	var found [][]int
	_ = x.search(ctx, 0, want, &found)
	if err := ctx.Err(); err != nil {
		return found, x.nodes, err
	}
	return found, x.nodes, nil
}

// Unique returns the only exact cover, or ErrNoCover / ErrAmbiguousCover.
func (x *ExactCover) Unique(ctx context.Context) ([]int, error) {
	found, _, err := x.Solve(ctx, 2) // stop after finding 2 solutions
	if err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, ErrNoCover
	case 1:
		return found[0], nil
	default:
		return nil, ErrAmbiguousCover
	}
}
