// Command aoc runs the Advent of Code solutions against local inputs and
// checks them against recorded answers.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"svw.info/aoc/internal/config"
	"svw.info/aoc/internal/infrastructure/storage"
	"svw.info/aoc/internal/metrics"
	_ "svw.info/aoc/internal/puzzles/all"
	"svw.info/aoc/internal/registry"
	"svw.info/aoc/internal/render"
	"svw.info/aoc/internal/usecase"
	"svw.info/aoc/internal/validator"
)

// app holds what the subcommands share once the root flags are parsed.
type app struct {
	configPath  string
	inputDir    string
	answersDir  string
	logLevel    string
	metricsFile string
	workers     int
	noColor     bool

	out, errOut io.Writer
	cfg         config.Config
	logger      *slog.Logger
	svc         *usecase.Service
	metrics     *metrics.Recorder
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Run Advent of Code solutions",
		Long:          "Runs the registered Advent of Code puzzles on the inputs under the input directory\nand compares their answers with the recorded ones.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultFile, "config file")
	pf.StringVar(&a.inputDir, "input-dir", "", "puzzle input directory (default input)")
	pf.StringVar(&a.answersDir, "answers-dir", "", "recorded answers directory (default answers)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (default info)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")
	pf.IntVar(&a.workers, "workers", 0, "days solved at once (default 1)")
	pf.BoolVar(&a.noColor, "no-color", false, "plain output even on a terminal")

	root.AddCommand(
		newRunCmd(a),
		newVerifyCmd(a),
		newRecordCmd(a),
		newListCmd(a),
		newWatchCmd(a),
		newInitCmd(a),
	)
	return root, a
}

// setup loads the config file, lets explicitly set flags override it and
// wires the service.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	// init creates the file, so it may not exist yet
	required := flags.Changed("config") && cmd.Name() != "init"
	cfg, err := config.Load(a.configPath, required)
	if err != nil {
		return err
	}
	if flags.Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if flags.Changed("answers-dir") {
		cfg.AnswersDir = a.answersDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := config.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))
	a.metrics = metrics.New()

	// Wire providers → use cases
	a.svc = usecase.NewService(registry.Default, storage.NewInputs(cfg.InputDir), storage.NewFS(cfg.AnswersDir), validator.New())
	a.svc.Observer = a.metrics
	a.svc.Logger = a.logger
	a.svc.Workers = cfg.Workers
	return nil
}

func (a *app) printer() *render.Printer { return render.New(a.out, a.cfg.NoColor) }

// flush writes the metrics file, if one is configured.
func (a *app) flush() error {
	if a.metrics == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteFile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	a.logger.Debug("metrics written", "path", a.cfg.MetricsFile)
	return nil
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root, a := newRootCmd(out, errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	err = errors.Join(err, a.flush())
	if err != nil {
		fmt.Fprintf(errOut, "aoc: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
