package y2020

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/solver"
)

// Passport Processing
func init() {
	registry.Register(2020, 4, solver.Day[[]passport, int, int]{
		Generate: day04Generate,
		Part1:    solver.Func(day04Part1),
		Part2:    solver.Func(day04Part2),
	})
}

type passport map[string]string

// cid is optional.
var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var (
	heightRe    = regexp.MustCompile(`^(\d+)(cm|in)$`)
	hairColorRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	passportRe  = regexp.MustCompile(`^\d{9}$`)
	yearRe      = regexp.MustCompile(`^\d{4}$`)
)

var eyeColors = map[string]bool{
	"amb": true, "blu": true, "brn": true, "gry": true, "grn": true, "hzl": true, "oth": true,
}

var fieldRules = map[string]func(string) bool{
	"byr": yearBetween(1920, 2002),
	"iyr": yearBetween(2010, 2020),
	"eyr": yearBetween(2020, 2030),
	"hgt": validHeight,
	"hcl": hairColorRe.MatchString,
	"ecl": func(v string) bool { return eyeColors[v] },
	"pid": passportRe.MatchString,
}

func day04Generate(input string) ([]passport, error) {
	blocks := generator.Blocks(input)
	if len(blocks) == 0 {
		return nil, generator.ErrEmpty
	}
	out := make([]passport, 0, len(blocks))
	for i, b := range blocks {
		p := passport{}
		for _, f := range strings.Fields(b) {
			k, v, ok := strings.Cut(f, ":")
			if !ok || k == "" {
				return nil, fmt.Errorf("passport %d: malformed field %q", i+1, f)
			}
			p[k] = v
		}
		out = append(out, p)
	}
	return out, nil
}

func (p passport) hasRequired() bool {
	for _, f := range requiredFields {
		if _, ok := p[f]; !ok {
			return false
		}
	}
	return true
}

func (p passport) valid() bool {
	for _, f := range requiredFields {
		v, ok := p[f]
		if !ok || !fieldRules[f](v) {
			return false
		}
	}
	return true
}

func yearBetween(lo, hi int) func(string) bool {
	return func(v string) bool {
		if !yearRe.MatchString(v) {
			return false
		}
		n, _ := strconv.Atoi(v)
		return n >= lo && n <= hi
	}
}

func validHeight(v string) bool {
	m := heightRe.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	if m[2] == "cm" {
		return n >= 150 && n <= 193
	}
	return n >= 59 && n <= 76
}

func day04Part1(ps []passport) int {
	n := 0
	for _, p := range ps {
		if p.hasRequired() {
			n++
		}
	}
	return n
}

func day04Part2(ps []passport) int {
	n := 0
	for _, p := range ps {
		if p.valid() {
			n++
		}
	}
	return n
}
