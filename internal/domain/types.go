package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FirstYear is the first Advent of Code event.
const FirstYear = 2015

// Date identifies one puzzle.
type Date struct {
	Year int `json:"year"`
	Day  int `json:"day"`
}

func (d Date) String() string { return fmt.Sprintf("%d/day%02d", d.Year, d.Day) }

// Valid reports whether d names a day of some event.
func (d Date) Valid() bool {
	return d.Year >= FirstYear && d.Day >= 1 && d.Day <= 25
}

// Before orders dates by year, then day.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	return d.Day < o.Day
}

var errBadDate = errors.New("date must look like 2020/7 or 2020/day07")

// ParseDate reads "2020/7", "2020/day07" or "2020-7".
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	year, day, ok := strings.Cut(s, "/")
	if !ok {
		year, day, ok = strings.Cut(s, "-")
	}
	if !ok {
		return Date{}, fmt.Errorf("%q: %w", s, errBadDate)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", s, errBadDate)
	}
	dd, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(day), "day"))
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", s, errBadDate)
	}
	d := Date{Year: y, Day: dd}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%s is not an Advent of Code day", d)
	}
	return d, nil
}

// Result is the outcome of running one part of one puzzle.
type Result struct {
	Date     Date
	Part     Part
	Answer   string
	Duration time.Duration
	Err      error
}

// Failed reports whether the part ran and went wrong. A part without a
// solution is not a failure.
func (r Result) Failed() bool {
	return r.Err != nil && !errors.Is(r.Err, ErrNotImplemented)
}

// Record holds the known-good answers of a puzzle.
type Record struct {
	Date       Date   `json:"date"`
	Part1      string `json:"part1,omitempty"`
	Part2      string `json:"part2,omitempty"`
	RecordedAt int64  `json:"recordedAt,omitempty"`
}

// Answer returns the recorded answer of p, if any.
func (r *Record) Answer(p Part) (string, bool) {
	if r == nil {
		return "", false
	}
	var a string
	switch p {
	case Part1:
		a = r.Part1
	case Part2:
		a = r.Part2
	}
	return a, a != ""
}

// Set stores answer as the known-good value of p.
func (r *Record) Set(p Part, answer string) {
	switch p {
	case Part1:
		r.Part1 = answer
	case Part2:
		r.Part2 = answer
	}
}

// Mismatch is a result that disagrees with its record.
type Mismatch struct {
	Date Date
	Part Part
	Want string
	Got  string
	Err  error
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("%s %s: want %s, failed: %v", m.Date, m.Part, m.Want, m.Err)
	}
	return fmt.Sprintf("%s %s: want %s, got %s", m.Date, m.Part, m.Want, m.Got)
}

// DayInfo is a listing entry for a registered puzzle.
type DayInfo struct {
	Date     Date
	HasInput bool
	Recorded bool
}
