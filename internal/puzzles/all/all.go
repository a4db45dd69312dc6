// Package all registers every puzzle year with the default registry.
package all

import (
	_ "svw.info/aoc/internal/puzzles/y2020"
	_ "svw.info/aoc/internal/puzzles/y2022"
)
