package y2020

import (
	"fmt"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Combo Breaker
func init() {
	registry.Register(2020, 25, solver.Day[[2]int64, int64, int64]{
		Generate: day25Generate,
		Part1:    day25Part1,
	})
}

const (
	handshakeModulus = 20201227
	handshakeSubject = 7
)

func day25Generate(input string) ([2]int64, error) {
	keys, err := generator.Ints[int64](input)
	if err != nil {
		return [2]int64{}, err
	}
	if len(keys) != 2 {
		return [2]int64{}, fmt.Errorf("want card and door public keys, have %d numbers", len(keys))
	}
	return [2]int64{keys[0], keys[1]}, nil
}

// loopSize finds how many times the subject was transformed to yield key.
func loopSize(key int64) (int64, error) {
	v := int64(1)
	for loop := int64(1); loop < handshakeModulus; loop++ {
		v = v * handshakeSubject % handshakeModulus
		if v == key {
			return loop, nil
		}
	}
	return 0, fmt.Errorf("public key %d: %w", key, errNoAnswer)
}

func transform(subject, loop int64) int64 {
	result, base := int64(1), subject%handshakeModulus
	for ; loop > 0; loop >>= 1 {
		if loop&1 == 1 {
			result = result * base % handshakeModulus
		}
		base = base * base % handshakeModulus
	}
	return result
}

// day25Part1 derives the encryption key from the card's loop size and the
// door's public key.
func day25Part1(keys [2]int64) (int64, error) {
	loop, err := loopSize(keys[0])
	if err != nil {
		return 0, err
	}
	return transform(keys[1], loop), nil
}
