// Package render prints run results as tables, styled when the output is a
// terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"svw.info/aoc/internal/domain"
)

var (
	colorOK    = lipgloss.Color("#2CD7C7")
	colorWarn  = lipgloss.Color("#F4D03F")
	colorError = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#5C7A84")
)

type styles struct {
	header, border, ok, warn, fail, muted lipgloss.Style
}

// Printer writes tables to one output.
type Printer struct {
	w io.Writer
	s styles
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// New returns a Printer for w. Colour is used only when w is a terminal
// and noColor is unset.
func New(w io.Writer, noColor bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if noColor || !IsTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, s: styles{
		header: r.NewStyle().Bold(true).Padding(0, 1),
		border: r.NewStyle().Foreground(colorMuted),
		ok:     r.NewStyle().Foreground(colorOK).Padding(0, 1),
		warn:   r.NewStyle().Foreground(colorWarn).Padding(0, 1),
		fail:   r.NewStyle().Foreground(colorError).Padding(0, 1),
		muted:  r.NewStyle().Foreground(colorMuted).Padding(0, 1),
	}}
}

// Duration rounds d to three significant-ish digits for display.
func Duration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return d.String()
	case d < time.Millisecond:
		return d.Round(time.Microsecond / 100).String()
	case d < time.Second:
		return d.Round(time.Microsecond * 10).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}

// firstLine keeps error text from breaking the table.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

type status int

const (
	statusOK status = iota
	statusWarn
	statusFail
	statusMuted
)

func resultStatus(r domain.Result) (string, status) {
	switch {
	case r.Err == nil:
		return "ok", statusOK
	case errors.Is(r.Err, domain.ErrNotImplemented):
		return "not implemented", statusMuted
	default:
		return "error: " + firstLine(r.Err.Error()), statusFail
	}
}

// table renders rows under headers; the last column is styled by kinds.
func (p *Printer) table(headers []string, rows [][]string, kinds []status) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row < 0 || row >= len(kinds) {
				return p.s.header
			}
			if col != len(headers)-1 {
				return p.s.muted.UnsetForeground()
			}
			switch kinds[row] {
			case statusOK:
				return p.s.ok
			case statusWarn:
				return p.s.warn
			case statusFail:
				return p.s.fail
			default:
				return p.s.muted
			}
		})
	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}

// Results prints one row per part.
func (p *Printer) Results(results []domain.Result) error {
	rows := make([][]string, 0, len(results))
	kinds := make([]status, 0, len(results))
	for _, r := range results {
		st, kind := resultStatus(r)
		rows = append(rows, []string{r.Date.String(), r.Part.String(), r.Answer, Duration(r.Duration), st})
		kinds = append(kinds, kind)
	}
	return p.table([]string{"DATE", "PART", "ANSWER", "TIME", "STATUS"}, rows, kinds)
}

// Verify prints results with their verdict against the recorded answers,
// then the puzzles that were not checked. recorded reports whether a result
// had an answer to be checked against; only those count as verified.
func (p *Printer) Verify(results []domain.Result, recorded func(domain.Result) bool, mismatches []domain.Mismatch, skipped []domain.Date) error {
	type key struct {
		d domain.Date
		p domain.Part
	}
	bad := make(map[key]domain.Mismatch, len(mismatches))
	for _, m := range mismatches {
		bad[key{m.Date, m.Part}] = m
	}
	rows := make([][]string, 0, len(results))
	kinds := make([]status, 0, len(results))
	checked := 0
	for _, r := range results {
		st, kind := resultStatus(r)
		rec := recorded(r)
		if rec {
			checked++
		}
		m, wrong := bad[key{r.Date, r.Part}]
		switch {
		case wrong && m.Err != nil:
			st, kind = "FAILED want "+m.Want+": "+firstLine(m.Err.Error()), statusFail
		case wrong:
			st, kind = "MISMATCH want "+m.Want, statusFail
		case kind == statusOK && rec:
			st = "verified"
		case kind == statusOK:
			st, kind = "unrecorded", statusWarn
		}
		rows = append(rows, []string{r.Date.String(), r.Part.String(), r.Answer, Duration(r.Duration), st})
		kinds = append(kinds, kind)
	}
	if err := p.table([]string{"DATE", "PART", "ANSWER", "TIME", "VERDICT"}, rows, kinds); err != nil {
		return err
	}
	if len(skipped) > 0 {
		names := make([]string, len(skipped))
		for i, d := range skipped {
			names[i] = d.String()
		}
		if _, err := fmt.Fprintln(p.w, p.s.warn.UnsetPadding().Render("not checked: "+strings.Join(names, ", "))); err != nil {
			return err
		}
	}
	verdict := p.s.ok.UnsetPadding().Render(fmt.Sprintf("%d answers verified", checked-len(mismatches)))
	if len(mismatches) > 0 {
		verdict = p.s.fail.UnsetPadding().Render(fmt.Sprintf("%d of %d answers wrong", len(mismatches), checked))
	}
	_, err := fmt.Fprintln(p.w, verdict)
	return err
}

// Days prints the registered puzzles with their input and record state.
func (p *Printer) Days(days []domain.DayInfo) error {
	yes := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	rows := make([][]string, 0, len(days))
	kinds := make([]status, 0, len(days))
	for _, d := range days {
		st, kind := "recorded", statusOK
		switch {
		case !d.HasInput:
			st, kind = "no input", statusMuted
		case !d.Recorded:
			st, kind = "unrecorded", statusWarn
		}
		rows = append(rows, []string{d.Date.String(), yes(d.HasInput), yes(d.Recorded), st})
		kinds = append(kinds, kind)
	}
	return p.table([]string{"DATE", "INPUT", "ANSWERS", "STATE"}, rows, kinds)
}
