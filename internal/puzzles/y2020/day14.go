package y2020

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Docking Data
func init() {
	registry.Register(2020, 14, solver.Day[[]dockingOp, uint64, uint64]{
		Generate: day14Generate,
		Part1:    day14Part1,
		Part2:    day14Part2,
	})
}

const wordBits = 36

// bitmask splits a mask string into the bits forced to one and the
// floating (X) bits.
type bitmask struct {
	ones, floating uint64
}

// dockingOp is either a mask update (isMask) or a memory write.
type dockingOp struct {
	isMask bool
	mask   bitmask
	addr   uint64
	value  uint64
}

var errNoMask = errors.New("memory write before any mask")

func parseMask(s string) (bitmask, error) {
	if len(s) != wordBits {
		return bitmask{}, fmt.Errorf("mask has %d bits, want %d", len(s), wordBits)
	}
	var m bitmask
	for i := 0; i < len(s); i++ {
		bit := uint64(1) << (wordBits - 1 - i)
		switch s[i] {
		case '1':
			m.ones |= bit
		case 'X':
			m.floating |= bit
		case '0':
		default:
			return bitmask{}, fmt.Errorf("unexpected %q in mask", s[i])
		}
	}
	return m, nil
}

func parseDockingOp(line string) (dockingOp, error) {
	lhs, rhs, ok := strings.Cut(line, " = ")
	if !ok {
		return dockingOp{}, errors.New(`want "mask = ..." or "mem[a] = v"`)
	}
	if lhs == "mask" {
		m, err := parseMask(rhs)
		return dockingOp{isMask: true, mask: m}, err
	}
	addr, ok := strings.CutPrefix(lhs, "mem[")
	if !ok || !strings.HasSuffix(addr, "]") {
		return dockingOp{}, fmt.Errorf("unknown target %q", lhs)
	}
	a, err := strconv.ParseUint(strings.TrimSuffix(addr, "]"), 10, wordBits)
	if err != nil {
		return dockingOp{}, err
	}
	v, err := strconv.ParseUint(rhs, 10, wordBits)
	if err != nil {
		return dockingOp{}, err
	}
	return dockingOp{addr: a, value: v}, nil
}

func day14Generate(input string) ([]dockingOp, error) {
	return generator.MapLines(input, parseDockingOp)
}

// dock runs the program, calling write for every memory write with the
// current mask.
func dock(ops []dockingOp, write func(mem map[uint64]uint64, m bitmask, op dockingOp)) (uint64, error) {
	mem := map[uint64]uint64{}
	var mask *bitmask
	for _, op := range ops {
		if op.isMask {
			m := op.mask
			mask = &m
			continue
		}
		if mask == nil {
			return 0, errNoMask
		}
		write(mem, *mask, op)
	}
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum, nil
}

func day14Part1(ops []dockingOp) (uint64, error) {
	return dock(ops, func(mem map[uint64]uint64, m bitmask, op dockingOp) {
		mem[op.addr] = op.value&m.floating | m.ones
	})
}

// day14Part2 treats the mask as an address decoder: ones are forced and
// every floating bit takes both values.
func day14Part2(ops []dockingOp) (uint64, error) {
	return dock(ops, func(mem map[uint64]uint64, m bitmask, op dockingOp) {
		base := (op.addr | m.ones) &^ m.floating
		for sub := m.floating; ; sub = (sub - 1) & m.floating {
			mem[base|sub] = op.value
			if sub == 0 {
				break
			}
		}
	})
}
