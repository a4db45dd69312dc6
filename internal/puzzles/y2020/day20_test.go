package y2020

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

// jigsaw is a generated puzzle together with its answers.
type jigsaw struct {
	input     string
	corners   int64
	roughness int
}

// newJigsaw draws a side×side picture with sea monsters at the given
// positions, cuts it into size×size tiles sharing their borders, then turns,
// flips and shuffles the tiles. Borders are random so every edge matches
// only its neighbour.
func newJigsaw(r *rand.Rand, side, size int, monsters [][2]int) jigsaw {
	inner := size - 2
	n := side * inner
	img := make([][]byte, n)
	for y := range img {
		img[y] = make([]byte, n)
		for x := range img[y] {
			img[y][x] = '.'
			if r.IntN(10) == 0 {
				img[y][x] = '#'
			}
		}
	}
	for _, m := range monsters {
		for dy, row := range seaMonster {
			for dx, c := range row {
				if c == '#' {
					img[m[0]+dy][m[1]+dx] = '#'
				}
			}
		}
	}
	rough := 0
	for _, row := range img {
		rough += strings.Count(string(row), "#")
	}

	big := make([][]byte, side*(size-1)+1)
	for y := range big {
		big[y] = make([]byte, len(big))
		for x := range big[y] {
			big[y][x] = ".#"[r.IntN(2)]
		}
	}
	at := func(i int) int { return i/inner*(size-1) + i%inner + 1 }
	for y := range img {
		for x := range img[y] {
			big[at(y)][at(x)] = img[y][x]
		}
	}

	type piece struct {
		r, c int
		grid []string
	}
	var pieces []piece
	for tr := range side {
		for tc := range side {
			g := make([]string, size)
			for y := range size {
				g[y] = string(big[tr*(size-1)+y][tc*(size-1) : tc*(size-1)+size])
			}
			for range r.IntN(4) {
				g = rotate(g)
			}
			if r.IntN(2) == 1 {
				g = flip(g)
			}
			pieces = append(pieces, piece{tr, tc, g})
		}
	}
	r.Shuffle(len(pieces), func(i, j int) { pieces[i], pieces[j] = pieces[j], pieces[i] })

	j := jigsaw{corners: 1, roughness: rough - 15*len(monsters)}
	var blocks []string
	for i, p := range pieces {
		id := 1009 + 17*i
		if (p.r == 0 || p.r == side-1) && (p.c == 0 || p.c == side-1) {
			j.corners *= int64(id)
		}
		blocks = append(blocks, fmt.Sprintf("Tile %d:\n%s", id, strings.Join(p.grid, "\n")))
	}
	j.input = strings.Join(blocks, "\n\n") + "\n"
	return j
}

func TestDay20(t *testing.T) {
	r := rand.New(rand.NewPCG(2020, 20))
	cases := []struct {
		side, size int
		monsters   [][2]int
	}{
		{3, 24, [][2]int{{2, 3}, {10, 40}, {30, 10}, {50, 30}}},
		{4, 24, [][2]int{{0, 0}, {5, 60}, {40, 25}, {85, 0}}},
	}
	for _, tc := range cases {
		t.Run(strconv.Itoa(tc.side), func(t *testing.T) {
			j := newJigsaw(r, tc.side, tc.size, tc.monsters)
			assert.Equal(t, strconv.FormatInt(j.corners, 10), solve(t, 20, domain.Part1, j.input))
			assert.Equal(t, strconv.Itoa(j.roughness), solve(t, 20, domain.Part2, j.input))
		})
	}
}

func TestOrientations(t *testing.T) {
	g := []string{"#..", "#.#", "..."}
	all := orientations(g)
	require.Len(t, all, 8)
	seen := map[string]bool{}
	for _, o := range all {
		seen[strings.Join(o, "/")] = true
	}
	assert.Len(t, seen, 8)

	assert.Equal(t, []string{".##", "...", ".#."}, rotate(g))
	assert.Equal(t, g, rotate(rotate(rotate(rotate(g)))))
	assert.Equal(t, []string{"..#", "#.#", "..."}, flip(g))
}

func TestMonsterCells(t *testing.T) {
	img := make([]string, 0, 5)
	img = append(img, strings.Repeat(".", 22))
	for _, row := range seaMonster {
		img = append(img, "."+strings.ReplaceAll(row, " ", ".")+".")
	}
	img = append(img, strings.Repeat(".", 22))
	marked, found := monsterCells(img)
	assert.Equal(t, 1, found)
	assert.Len(t, marked, 15)
}

func TestDay20Errors(t *testing.T) {
	single := "Tile 1:\n#..\n.#.\n..#"
	require.ErrorIs(t, solveErr(t, 20, domain.Part1, single), errNotFourCorners)

	for name, in := range map[string]string{
		"header":  "Tile one:\n#..\n.#.\n..#",
		"ragged":  "Tile 1:\n#..\n.#\n..#",
		"chars":   "Tile 1:\n#..\n.x.\n..#",
		"sizes":   "Tile 1:\n#..\n.#.\n..#\n\nTile 2:\n#...\n.#..\n..#.\n...#",
		"too few": "Tile 1:\n#.\n.#",
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, solveErr(t, 20, domain.Part1, in))
		})
	}
}
