package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/aoc/internal/config"
	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/watch"
)

// selection is what a positional argument names: one day or a whole year.
// The zero value means every registered puzzle.
type selection struct {
	year int
	date domain.Date
}

func (s selection) isDate() bool { return s.date.Valid() }

func parseSelection(args []string) (selection, error) {
	if len(args) == 0 {
		return selection{}, nil
	}
	arg := args[0]
	if strings.ContainsAny(arg, "/-") {
		d, err := domain.ParseDate(arg)
		return selection{year: d.Year, date: d}, err
	}
	y, err := strconv.Atoi(arg)
	if err != nil || y < domain.FirstYear {
		return selection{}, fmt.Errorf("%q is neither a year nor a date like 2020/7", arg)
	}
	return selection{year: y}, nil
}

func (a *app) dates(sel selection) ([]domain.Date, error) {
	if sel.isDate() {
		return []domain.Date{sel.date}, nil
	}
	return a.svc.Dates(sel.year)
}

// failures returns an error naming how many results went wrong.
func failures(results []domain.Result) error {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d parts failed", n, len(results))
}

func partsFlag(s string) ([]domain.Part, error) {
	if s == "" {
		return nil, nil
	}
	p, err := domain.ParsePart(s)
	if err != nil {
		return nil, err
	}
	return []domain.Part{p}, nil
}

func newRunCmd(a *app) *cobra.Command {
	var (
		year   int
		part   string
		record bool
	)
	cmd := &cobra.Command{
		Use:   "run [year/day | year]",
		Short: "Solve puzzles and print their answers",
		Long:  "Solves one day, a whole year, or every registered puzzle when no argument\nor --year is given. Days without an input file are skipped.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelection(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("year") {
				if len(args) > 0 {
					return errors.New("--year cannot be combined with a year or day argument")
				}
				sel.year = year
			}
			parts, err := partsFlag(part)
			if err != nil {
				return err
			}
			var results []domain.Result
			if sel.isDate() {
				results, err = a.svc.Run(cmd.Context(), sel.date, parts...)
			} else {
				if parts != nil {
					return errors.New("--part needs a single day")
				}
				results, err = a.svc.RunAll(cmd.Context(), sel.year)
			}
			if err != nil {
				return err
			}
			if err := a.printer().Results(results); err != nil {
				return err
			}
			if record {
				if _, err := a.svc.Record(cmd.Context(), results); err != nil {
					return err
				}
			}
			return failures(results)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "run every registered day of this year")
	cmd.Flags().StringVarP(&part, "part", "p", "", "1 or 2 (default both)")
	cmd.Flags().BoolVar(&record, "record", false, "store the answers as known-good")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [year/day | year]",
		Short: "Check answers against the recorded ones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelection(args)
			if err != nil {
				return err
			}
			dates, err := a.dates(sel)
			if err != nil {
				return err
			}
			rep, err := a.svc.Verify(cmd.Context(), dates)
			if err != nil {
				return err
			}
			if err := a.printer().Verify(rep.Results, rep.Recorded, rep.Mismatches, rep.Skipped); err != nil {
				return err
			}
			if !rep.OK() {
				return fmt.Errorf("%d of %d answers differ from the recorded ones", len(rep.Mismatches), rep.Checked())
			}
			return nil
		},
	}
}

func newRecordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "record <year/day | year>",
		Short: "Solve puzzles and store their answers as known-good",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelection(args)
			if err != nil {
				return err
			}
			var results []domain.Result
			if sel.isDate() {
				results, err = a.svc.Run(cmd.Context(), sel.date)
			} else {
				results, err = a.svc.RunAll(cmd.Context(), sel.year)
			}
			if err != nil {
				return err
			}
			if err := a.printer().Results(results); err != nil {
				return err
			}
			recs, err := a.svc.Record(cmd.Context(), results)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "recorded answers for %d puzzles\n", len(recs))
			return failures(results)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles with their input and answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			days, err := a.svc.List(cmd.Context(), year)
			if err != nil {
				return err
			}
			return a.printer().Days(days)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "only this year")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "watch <year/day>",
		Short: "Solve a puzzle again whenever its input changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDate(args[0])
			if err != nil {
				return err
			}
			parts, err := partsFlag(part)
			if err != nil {
				return err
			}
			w := watch.New(a.svc.Inputs.Path(d), a.logger)
			return w.Run(cmd.Context(), func(ctx context.Context) error {
				results, err := a.svc.Run(ctx, d, parts...)
				if err != nil {
					return err
				}
				return a.printer().Results(results)
			})
		},
	}
	cmd.Flags().StringVarP(&part, "part", "p", "", "1 or 2 (default both)")
	return cmd
}

func newInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", a.configPath)
			}
			if err := config.Write(a.configPath, a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", a.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
