package lib

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const answersDSNEnv = "AOC_ANSWERS_DSN"

// Config holds settings for the aoc command.
type Config struct {
	InputsDir   string        `yaml:"inputs_dir"`
	Concurrency int           `yaml:"concurrency"`
	Logging     LoggingConfig `yaml:"logging"`
	Answers     AnswersConfig `yaml:"answers"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// AnswersConfig configures where results are recorded.
type AnswersConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
}

func DefaultConfig() Config {
	return Config{
		InputsDir:   "inputs",
		Concurrency: 4,
		Logging:     LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML config from path on top of the defaults. A
// missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if dsn := os.Getenv(answersDSNEnv); dsn != "" {
		cfg.Answers.DSN = dsn
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.InputsDir == "" {
		return errors.New("inputs_dir must not be empty")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Answers.Enabled && c.Answers.DSN == "" {
		return fmt.Errorf("answers are enabled but no dsn is set (try %s)", answersDSNEnv)
	}
	return nil
}
