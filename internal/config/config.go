package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"weasel/internal/ga"
)

// Config is the root configuration structure
type Config struct {
	Seed                int64         `yaml:"seed"` // 0 seeds from the clock
	Population          int           `yaml:"population"`
	MutationProbability float64       `yaml:"mutation_probability"`
	Generations         int           `yaml:"generations"`
	Alphabet            string        `yaml:"alphabet"`
	LogLevel            string        `yaml:"log_level"` // debug|info|warn|error
	Logging             LogConfig     `yaml:"logging"`
	Metrics             MetricsConfig `yaml:"metrics"`
}

// LogConfig defines the optional per-generation run log
type LogConfig struct {
	CSVPath  string `yaml:"csv_path"`
	JSONPath string `yaml:"json_path"`
	Every    int    `yaml:"every"`
}

// MetricsConfig defines the optional Prometheus endpoint
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML config file on top of the defaults.
// Keys missing from the file keep their default value; keys present with
// a zero value (e.g. mutation_probability: 0) are honoured.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Population == 0 {
		cfg.Population = 100
	}
	if cfg.MutationProbability == 0 {
		cfg.MutationProbability = 0.2
	}
	if cfg.Generations == 0 {
		cfg.Generations = 1000
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = ga.DefaultAlphabet.String()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Logging.Every == 0 {
		cfg.Logging.Every = 1
	}
}

// Validate checks every value is usable by the engine
func (c *Config) Validate() error {
	if c.Population < 1 {
		return fmt.Errorf("population must be at least 1, got %d", c.Population)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return fmt.Errorf("mutation_probability must be within [0, 1], got %g", c.MutationProbability)
	}
	if err := c.GAAlphabet().Validate(); err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}
	if c.Logging.Every < 1 {
		return fmt.Errorf("logging.every must be at least 1, got %d", c.Logging.Every)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// GAAlphabet returns the configured alphabet as engine symbols
func (c *Config) GAAlphabet() ga.Alphabet {
	return ga.NewAlphabet(c.Alphabet)
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
