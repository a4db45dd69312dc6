package y2020

import (
	"fmt"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Operation Order
func init() {
	registry.Register(2020, 18, solver.Day[[][]token, int64, int64]{
		Generate: day18Generate,
		Part1: func(exprs [][]token) (int64, error) {
			return sumExpressions(exprs, map[byte]int{'+': 1, '*': 1})
		},
		Part2: func(exprs [][]token) (int64, error) {
			return sumExpressions(exprs, map[byte]int{'+': 2, '*': 1})
		},
	})
}

// token is a number (op == 0) or one of + * ( ).
type token struct {
	op  byte
	val int64
	col int // 1-based
}

func tokenize(line string) ([]token, error) {
	var out []token
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == ' ':
		case c == '+' || c == '*' || c == '(' || c == ')':
			out = append(out, token{op: c, col: i + 1})
		case c >= '0' && c <= '9':
			t := token{col: i + 1}
			for ; i < len(line) && line[i] >= '0' && line[i] <= '9'; i++ {
				t.val = t.val*10 + int64(line[i]-'0')
			}
			i--
			out = append(out, t)
		default:
			return nil, fmt.Errorf("column %d: unexpected %q", i+1, c)
		}
	}
	if len(out) == 0 {
		return nil, generator.ErrEmpty
	}
	return out, nil
}

func day18Generate(input string) ([][]token, error) {
	return generator.MapLines(input, tokenize)
}

// evaluator is a precedence-climbing parser over one tokenized line.
type evaluator struct {
	toks []token
	pos  int
	prec map[byte]int
}

func (e *evaluator) peek() (token, bool) {
	if e.pos < len(e.toks) {
		return e.toks[e.pos], true
	}
	return token{}, false
}

func (e *evaluator) errAt(format string, args ...any) error {
	col := len(e.toks)
	if t, ok := e.peek(); ok {
		col = t.col
	} else if col > 0 {
		col = e.toks[col-1].col + 1
	}
	return fmt.Errorf("column %d: %s", col, fmt.Sprintf(format, args...))
}

func (e *evaluator) primary() (int64, error) {
	t, ok := e.peek()
	if !ok {
		return 0, e.errAt("unexpected end of expression")
	}
	e.pos++
	switch t.op {
	case 0:
		return t.val, nil
	case '(':
		v, err := e.expr(1)
		if err != nil {
			return 0, err
		}
		if c, ok := e.peek(); !ok || c.op != ')' {
			return 0, e.errAt("missing )")
		}
		e.pos++
		return v, nil
	default:
		e.pos--
		return 0, e.errAt("unexpected %q", t.op)
	}
}

func (e *evaluator) expr(minPrec int) (int64, error) {
	lhs, err := e.primary()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := e.peek()
		if !ok || t.op == ')' {
			return lhs, nil
		}
		p, isOp := e.prec[t.op]
		if !isOp {
			return 0, e.errAt("want operator, have %s", describe(t))
		}
		if p < minPrec {
			return lhs, nil
		}
		e.pos++
		rhs, err := e.expr(p + 1)
		if err != nil {
			return 0, err
		}
		if t.op == '+' {
			lhs += rhs
		} else {
			lhs *= rhs
		}
	}
}

func describe(t token) string {
	if t.op == 0 {
		return fmt.Sprintf("number %d", t.val)
	}
	return fmt.Sprintf("%q", t.op)
}

// evaluate computes one expression with the given operator precedences.
func evaluate(toks []token, prec map[byte]int) (int64, error) {
	e := &evaluator{toks: toks, prec: prec}
	v, err := e.expr(1)
	if err != nil {
		return 0, err
	}
	if e.pos != len(toks) {
		return 0, e.errAt("unexpected %s", describe(toks[e.pos]))
	}
	return v, nil
}

func sumExpressions(exprs [][]token, prec map[byte]int) (int64, error) {
	var sum int64
	for i, toks := range exprs {
		v, err := evaluate(toks, prec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}
