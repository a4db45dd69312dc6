package y2020

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Ticket Translation
func init() {
	registry.Register(2020, 16, solver.Day[*ticketNotes, int, int]{
		Generate: day16Generate,
		Part1:    solver.Func(day16Part1),
		Part2:    day16Part2,
	})
}

type span struct{ lo, hi int }

type ticketField struct {
	name   string
	ranges []span
}

func (f ticketField) allows(v int) bool {
	for _, r := range f.ranges {
		if v >= r.lo && v <= r.hi {
			return true
		}
	}
	return false
}

type ticketNotes struct {
	fields []ticketField
	mine   []int
	nearby [][]int
}

var errTicketSections = errors.New("want rules, your ticket and nearby tickets")

func parseTicketField(line string) (ticketField, error) {
	name, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return ticketField{}, errors.New(`want "name: a-b or c-d"`)
	}
	f := ticketField{name: name}
	for _, r := range strings.Split(rest, " or ") {
		var s span
		if _, err := fmt.Sscanf(r, "%d-%d", &s.lo, &s.hi); err != nil {
			return ticketField{}, fmt.Errorf("range %q: %w", r, err)
		}
		if s.lo > s.hi {
			return ticketField{}, fmt.Errorf("range %q is empty", r)
		}
		f.ranges = append(f.ranges, s)
	}
	return f, nil
}

func parseTickets(block, header string) ([][]int, error) {
	lines := strings.Split(block, "\n")
	if strings.TrimSpace(lines[0]) != header {
		return nil, fmt.Errorf("want %q, have %q", header, lines[0])
	}
	return generator.MapLines(strings.Join(lines[1:], "\n"), func(l string) ([]int, error) {
		return generator.IntList[int](l, ",")
	})
}

func day16Generate(input string) (*ticketNotes, error) {
	blocks := generator.Blocks(input)
	if len(blocks) != 3 {
		return nil, errTicketSections
	}
	fields, err := generator.MapLines(blocks[0], parseTicketField)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	mine, err := parseTickets(blocks[1], "your ticket:")
	if err != nil {
		return nil, fmt.Errorf("your ticket: %w", err)
	}
	if len(mine) != 1 {
		return nil, fmt.Errorf("want one ticket of yours, have %d", len(mine))
	}
	nearby, err := parseTickets(blocks[2], "nearby tickets:")
	if err != nil {
		return nil, fmt.Errorf("nearby tickets: %w", err)
	}
	n := &ticketNotes{fields: fields, mine: mine[0], nearby: nearby}
	for i, t := range append([][]int{n.mine}, nearby...) {
		if len(t) != len(fields) {
			return nil, fmt.Errorf("ticket %d has %d values for %d fields", i, len(t), len(fields))
		}
	}
	return n, nil
}

// invalid returns the values of t no field allows.
func (n *ticketNotes) invalid(t []int) []int {
	var out []int
	for _, v := range t {
		ok := false
		for _, f := range n.fields {
			if f.allows(v) {
				ok = true
				break
			}
		}
		if !ok {
			out = append(out, v)
		}
	}
	return out
}

func day16Part1(n *ticketNotes) int {
	rate := 0
	for _, t := range n.nearby {
		for _, v := range n.invalid(t) {
			rate += v
		}
	}
	return rate
}

// fieldOrder deduces which field sits at each ticket position. Every field
// and every position is a column of an exact cover problem; a row pairs a
// field with a position all valid tickets agree on.
func (n *ticketNotes) fieldOrder() ([]string, error) {
	var valid [][]int
	for _, t := range n.nearby {
		if len(n.invalid(t)) == 0 {
			valid = append(valid, t)
		}
	}
	k := len(n.fields)
	x := solver.NewExactCover(2 * k)
	type pair struct{ field, pos int }
	var pairs []pair
	for fi, f := range n.fields {
		for pos := range k {
			ok := true
			for _, t := range valid {
				if !f.allows(t[pos]) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			if _, err := x.AddRow(fi, k+pos); err != nil {
				return nil, err
			}
			pairs = append(pairs, pair{fi, pos})
		}
	}
	rows, err := x.Unique(context.Background())
	if err != nil {
		return nil, fmt.Errorf("field positions: %w", err)
	}
	order := make([]string, k)
	for _, r := range rows {
		order[pairs[r].pos] = n.fields[pairs[r].field].name
	}
	return order, nil
}

// day16Part2 multiplies the departure fields of your ticket.
func day16Part2(n *ticketNotes) (int, error) {
	order, err := n.fieldOrder()
	if err != nil {
		return 0, err
	}
	product := 1
	for pos, name := range order {
		if strings.HasPrefix(name, "departure") {
			product *= n.mine[pos]
		}
	}
	return product, nil
}
