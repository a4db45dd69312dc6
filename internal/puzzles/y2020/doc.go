// Package y2020 holds the Advent of Code 2020 solutions. Every day registers
// a solver.Day with the default registry: a generator that parses the raw
// input and the two parts that consume it.
package y2020

import "errors"

// errNoAnswer is returned when an input admits no solution.
var errNoAnswer = errors.New("no solution in input")
