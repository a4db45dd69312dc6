package y2020

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Handy Haversacks
func init() {
	registry.Register(2020, 7, solver.Day[bagRules, int, int]{
		Generate: day07Generate,
		Part1:    day07Part1,
		Part2:    day07Part2,
	})
}

const shinyGold = "shiny gold"

type bagCount struct {
	n     int
	color string
}

// bagRules maps a bag colour to the bags it must directly contain.
type bagRules map[string][]bagCount

var (
	bagCountRe   = regexp.MustCompile(`^(\d+) (\w+ \w+) bags?$`)
	errBagCycle  = errors.New("bag rules contain a cycle")
	errNoBagRule = errors.New("no rule for bag")
)

func parseBagRule(line string) (string, []bagCount, error) {
	outer, inner, ok := strings.Cut(strings.TrimSuffix(strings.TrimSpace(line), "."), " bags contain ")
	if !ok {
		return "", nil, errors.New(`want "<colour> bags contain ..."`)
	}
	if inner == "no other bags" {
		return outer, nil, nil
	}
	var contents []bagCount
	for _, part := range strings.Split(inner, ", ") {
		m := bagCountRe.FindStringSubmatch(part)
		if m == nil {
			return "", nil, fmt.Errorf("bad bag count %q", part)
		}
		n, _ := strconv.Atoi(m[1])
		contents = append(contents, bagCount{n: n, color: m[2]})
	}
	return outer, contents, nil
}

func day07Generate(input string) (bagRules, error) {
	rules := bagRules{}
	lines := generator.Lines(input)
	if len(lines) == 0 {
		return nil, generator.ErrEmpty
	}
	for i, l := range lines {
		color, contents, err := parseBagRule(l)
		if err != nil {
			return nil, &generator.ParseError{Line: i + 1, Text: l, Err: err}
		}
		if _, dup := rules[color]; dup {
			return nil, &generator.ParseError{Line: i + 1, Text: l, Err: fmt.Errorf("second rule for %s", color)}
		}
		rules[color] = contents
	}
	return rules, nil
}

const (
	unvisited = iota
	visiting
	visited
)

// holds reports whether a bag of colour c eventually contains target.
func (r bagRules) holds(c, target string, state map[string]int, memo map[string]bool) (bool, error) {
	switch state[c] {
	case visiting:
		return false, fmt.Errorf("%w through %s", errBagCycle, c)
	case visited:
		return memo[c], nil
	}
	state[c] = visiting
	found := false
	for _, in := range r[c] {
		if in.color == target {
			found = true
			break
		}
		ok, err := r.holds(in.color, target, state, memo)
		if err != nil {
			return false, err
		}
		if ok {
			found = true
			break
		}
	}
	state[c] = visited
	memo[c] = found
	return found, nil
}

// inside counts the bags required inside one bag of colour c.
func (r bagRules) inside(c string, state map[string]int, memo map[string]int) (int, error) {
	switch state[c] {
	case visiting:
		return 0, fmt.Errorf("%w through %s", errBagCycle, c)
	case visited:
		return memo[c], nil
	}
	contents, ok := r[c]
	if !ok {
		return 0, fmt.Errorf("%w %q", errNoBagRule, c)
	}
	state[c] = visiting
	total := 0
	for _, in := range contents {
		n, err := r.inside(in.color, state, memo)
		if err != nil {
			return 0, err
		}
		total += in.n * (1 + n)
	}
	state[c] = visited
	memo[c] = total
	return total, nil
}

func day07Part1(r bagRules) (int, error) {
	state := map[string]int{}
	memo := map[string]bool{}
	n := 0
	for c := range r {
		if c == shinyGold {
			continue
		}
		ok, err := r.holds(c, shinyGold, state, memo)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func day07Part2(r bagRules) (int, error) {
	return r.inside(shinyGold, map[string]int{}, map[string]int{})
}
