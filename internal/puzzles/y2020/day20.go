package y2020

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Jurassic Jigsaw
func init() {
	registry.Register(2020, 20, solver.Day[[]tile, int64, int]{
		Generate: day20Generate,
		Part1:    day20Part1,
		Part2:    day20Part2,
	})
}

type tile struct {
	id   int64
	grid []string // square, rows of '#' and '.'
}

var (
	errNotFourCorners = errors.New("tiles do not have exactly four corners")
	errNoMonsters     = errors.New("no sea monsters in any orientation")
)

var seaMonster = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

func parseTile(block string) (tile, error) {
	lines := strings.Split(block, "\n")
	var t tile
	if _, err := fmt.Sscanf(lines[0], "Tile %d:", &t.id); err != nil {
		return tile{}, fmt.Errorf("header %q: %w", lines[0], err)
	}
	t.grid = lines[1:]
	for i, row := range t.grid {
		if len(row) != len(t.grid) {
			return tile{}, fmt.Errorf("tile %d: row %d is %d wide, tile is %d high", t.id, i+1, len(row), len(t.grid))
		}
		if strings.Trim(row, "#.") != "" {
			return tile{}, fmt.Errorf("tile %d: row %d: unexpected characters", t.id, i+1)
		}
	}
	if len(t.grid) < 3 {
		return tile{}, fmt.Errorf("tile %d is too small", t.id)
	}
	return t, nil
}

func day20Generate(input string) ([]tile, error) {
	blocks := generator.Blocks(input)
	if len(blocks) == 0 {
		return nil, generator.ErrEmpty
	}
	tiles := make([]tile, 0, len(blocks))
	for _, b := range blocks {
		t, err := parseTile(b)
		if err != nil {
			return nil, err
		}
		if len(tiles) > 0 && len(t.grid) != len(tiles[0].grid) {
			return nil, fmt.Errorf("tile %d is %d high, want %d", t.id, len(t.grid), len(tiles[0].grid))
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func column(g []string, x int) string {
	b := make([]byte, len(g))
	for y, row := range g {
		b[y] = row[x]
	}
	return string(b)
}

// edges of g: top and bottom read left to right, left and right read top
// to bottom.
func top(g []string) string    { return g[0] }
func bottom(g []string) string { return g[len(g)-1] }
func left(g []string) string   { return column(g, 0) }
func right(g []string) string  { return column(g, len(g[0])-1) }

// canonical identifies an edge regardless of which way round it is read.
func canonical(edge string) string {
	return min(edge, reverse(edge))
}

// rotate turns g a quarter clockwise.
func rotate(g []string) []string {
	out := make([]string, len(g[0]))
	for x := range out {
		out[x] = reverse(column(g, x))
	}
	return out
}

func flip(g []string) []string {
	out := make([]string, len(g))
	for y, row := range g {
		out[y] = reverse(row)
	}
	return out
}

// orientations lists the eight rotations and reflections of g.
func orientations(g []string) [][]string {
	out := make([][]string, 0, 8)
	for range 2 {
		for range 4 {
			out = append(out, g)
			g = rotate(g)
		}
		g = flip(g)
	}
	return out
}

// edgeIndex maps each canonical edge to the tiles carrying it.
func edgeIndex(tiles []tile) map[string][]int {
	idx := map[string][]int{}
	for i, t := range tiles {
		for _, e := range []string{top(t.grid), right(t.grid), bottom(t.grid), left(t.grid)} {
			c := canonical(e)
			idx[c] = append(idx[c], i)
		}
	}
	return idx
}

func unmatched(idx map[string][]int, edge string) bool {
	return len(idx[canonical(edge)]) == 1
}

// corners returns the tiles with exactly two edges matching no other tile.
func corners(tiles []tile, idx map[string][]int) ([]int, error) {
	var out []int
	for i, t := range tiles {
		n := 0
		for _, e := range []string{top(t.grid), right(t.grid), bottom(t.grid), left(t.grid)} {
			if unmatched(idx, e) {
				n++
			}
		}
		if n == 2 {
			out = append(out, i)
		}
	}
	if len(out) != 4 {
		return nil, fmt.Errorf("%w: found %d", errNotFourCorners, len(out))
	}
	return out, nil
}

func day20Part1(tiles []tile) (int64, error) {
	cs, err := corners(tiles, edgeIndex(tiles))
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for _, i := range cs {
		product *= tiles[i].id
	}
	return product, nil
}

// assemble lays the tiles out row by row, starting from a corner turned so
// its unmatched edges face up and left, and returns the oriented grids.
func assemble(tiles []tile) ([][][]string, error) {
	side := int(math.Sqrt(float64(len(tiles))))
	if side*side != len(tiles) {
		return nil, fmt.Errorf("%d tiles do not form a square", len(tiles))
	}
	idx := edgeIndex(tiles)
	cs, err := corners(tiles, idx)
	if err != nil {
		return nil, err
	}
	used := make([]bool, len(tiles))
	layout := make([][][]string, side)
	for r := range side {
		layout[r] = make([][]string, side)
		for c := range side {
			if r == 0 && c == 0 {
				for _, g := range orientations(tiles[cs[0]].grid) {
					if unmatched(idx, top(g)) && unmatched(idx, left(g)) {
						layout[0][0] = g
						break
					}
				}
				if layout[0][0] == nil {
					return nil, fmt.Errorf("corner tile %d has opposite unmatched edges", tiles[cs[0]].id)
				}
				used[cs[0]] = true
				continue
			}
			// the neighbour already placed: left one in a row, else above
			var want string
			if c > 0 {
				want = right(layout[r][c-1])
			} else {
				want = bottom(layout[r-1][c])
			}
			// tiles on the outside keep their unmatched edges outward
			fits := func(g []string) bool {
				if c > 0 && left(g) != right(layout[r][c-1]) || c == 0 && !unmatched(idx, left(g)) {
					return false
				}
				if r == 0 {
					return unmatched(idx, top(g))
				}
				return top(g) == bottom(layout[r-1][c])
			}
			placed := false
			for _, i := range idx[canonical(want)] {
				if used[i] {
					continue
				}
				for _, g := range orientations(tiles[i].grid) {
					if fits(g) {
						layout[r][c], used[i], placed = g, true, true
						break
					}
				}
				if placed {
					break
				}
			}
			if !placed {
				return nil, fmt.Errorf("no tile fits at row %d column %d", r+1, c+1)
			}
		}
	}
	return layout, nil
}

// image strips every tile's border and joins the tiles into one picture.
func image(layout [][][]string) []string {
	var out []string
	for _, row := range layout {
		inner := len(row[0]) - 2
		for y := 1; y <= inner; y++ {
			var b strings.Builder
			for _, g := range row {
				b.WriteString(g[y][1 : 1+inner])
			}
			out = append(out, b.String())
		}
	}
	return out
}

// monsterCells marks every cell of img covered by a sea monster and returns
// how many monsters were seen.
func monsterCells(img []string) (map[[2]int]bool, int) {
	var pattern [][2]int
	for dy, row := range seaMonster {
		for dx, c := range row {
			if c == '#' {
				pattern = append(pattern, [2]int{dy, dx})
			}
		}
	}
	h, w := len(seaMonster), len(seaMonster[0])
	marked := map[[2]int]bool{}
	found := 0
	for y := 0; y+h <= len(img); y++ {
		for x := 0; x+w <= len(img[y]); x++ {
			hit := true
			for _, p := range pattern {
				if img[y+p[0]][x+p[1]] != '#' {
					hit = false
					break
				}
			}
			if !hit {
				continue
			}
			found++
			for _, p := range pattern {
				marked[[2]int{y + p[0], x + p[1]}] = true
			}
		}
	}
	return marked, found
}

// day20Part2 counts the '#' not part of any sea monster, in the orientation
// of the image where monsters appear.
func day20Part2(tiles []tile) (int, error) {
	layout, err := assemble(tiles)
	if err != nil {
		return 0, err
	}
	for _, img := range orientations(image(layout)) {
		marked, found := monsterCells(img)
		if found == 0 {
			continue
		}
		rough := 0
		for _, row := range img {
			rough += strings.Count(row, "#")
		}
		return rough - len(marked), nil
	}
	return 0, errNoMonsters
}
