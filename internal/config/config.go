// Package config loads the runner settings from aoc.yaml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "aoc.yaml"

type Config struct {
	InputDir    string `yaml:"input_dir"`
	AnswersDir  string `yaml:"answers_dir"`
	LogLevel    string `yaml:"log_level"`
	Workers     int    `yaml:"workers"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
	NoColor     bool   `yaml:"no_color,omitempty"`
}

func Default() Config {
	return Config{
		InputDir:   "input",
		AnswersDir: "answers",
		LogLevel:   "info",
		Workers:    1,
	}
}

// Load reads path over the defaults. A missing file is only an error when
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Write stores cfg as YAML at path.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, have %d", c.Workers)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.InputDir == "" || c.AnswersDir == "" {
		return errors.New("input_dir and answers_dir must be set")
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q, want debug|info|warn|error", s)
}
