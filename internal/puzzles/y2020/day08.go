package y2020

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Handheld Halting
func init() {
	registry.Register(2020, 8, solver.Day[[]instruction, int, int]{
		Generate: day08Generate,
		Part1:    day08Part1,
		Part2:    day08Part2,
	})
}

type opcode int

const (
	opNop opcode = iota
	opAcc
	opJmp
)

var opcodes = map[string]opcode{"nop": opNop, "acc": opAcc, "jmp": opJmp}

type instruction struct {
	op  opcode
	arg int
}

var errHalted = errors.New("program terminated without looping")

func parseInstruction(line string) (instruction, error) {
	name, arg, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return instruction{}, errors.New(`want "op ±n"`)
	}
	op, ok := opcodes[name]
	if !ok {
		return instruction{}, fmt.Errorf("unknown instruction %q", name)
	}
	if arg == "" || arg[0] != '+' && arg[0] != '-' {
		return instruction{}, fmt.Errorf("argument %q has no sign", arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return instruction{}, err
	}
	return instruction{op: op, arg: n}, nil
}

func day08Generate(input string) ([]instruction, error) {
	return generator.MapLines(input, parseInstruction)
}

type bootResult int

const (
	bootLooped bootResult = iota
	bootTerminated
	bootOutOfRange
)

// boot runs the program until an instruction is about to run a second time
// or the program counter leaves the program. Termination means the counter
// lands exactly one past the last instruction.
func boot(prog []instruction) (acc int, res bootResult) {
	seen := make([]bool, len(prog))
	pc := 0
	for {
		if pc == len(prog) {
			return acc, bootTerminated
		}
		if pc < 0 || pc > len(prog) {
			return acc, bootOutOfRange
		}
		if seen[pc] {
			return acc, bootLooped
		}
		seen[pc] = true
		switch in := prog[pc]; in.op {
		case opAcc:
			acc += in.arg
			pc++
		case opJmp:
			pc += in.arg
		default:
			pc++
		}
	}
}

func day08Part1(prog []instruction) (int, error) {
	acc, res := boot(prog)
	switch res {
	case bootLooped:
		return acc, nil
	case bootTerminated:
		return 0, errHalted
	default:
		return 0, errors.New("jump outside the program")
	}
}

// day08Part2 repairs the program by swapping a single nop and jmp.
func day08Part2(prog []instruction) (int, error) {
	fixed := slices.Clone(prog)
	for i, in := range prog {
		switch in.op {
		case opNop:
			fixed[i].op = opJmp
		case opJmp:
			fixed[i].op = opNop
		default:
			continue
		}
		if acc, res := boot(fixed); res == bootTerminated {
			return acc, nil
		}
		fixed[i] = in
	}
	return 0, errNoAnswer
}
