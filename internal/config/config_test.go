package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weasel/internal/ga"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weasel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 100, cfg.Population)
	assert.Equal(t, 0.2, cfg.MutationProbability)
	assert.Equal(t, 1000, cfg.Generations)
	assert.Equal(t, ga.DefaultAlphabet, cfg.GAAlphabet())
	assert.Equal(t, 1, cfg.Logging.Every)
	assert.Empty(t, cfg.Logging.CSVPath)
	assert.Empty(t, cfg.Logging.JSONPath)
	assert.Empty(t, cfg.Metrics.Addr)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
seed: 42
population: 30
generations: 50
alphabet: "abct"
log_level: debug
logging:
  csv_path: runs/run.csv
metrics:
  addr: ":2112"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.Population)
	assert.Equal(t, 50, cfg.Generations)
	assert.Equal(t, 0.2, cfg.MutationProbability, "missing keys keep defaults")
	assert.Equal(t, ga.NewAlphabet("abct"), cfg.GAAlphabet())
	assert.Equal(t, "runs/run.csv", cfg.Logging.CSVPath)
	assert.Equal(t, 1, cfg.Logging.Every)
	assert.Equal(t, ":2112", cfg.Metrics.Addr)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_ExplicitZeroMutation(t *testing.T) {
	cfg, err := Load(writeConfig(t, "mutation_probability: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.MutationProbability)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"population":  "population: 0\n",
		"generations": "generations: -1\n",
		"mutation":    "mutation_probability: 1.5\n",
		"alphabet":    "alphabet: \"aab\"\n",
		"empty alpha": "alphabet: \"\"\n",
		"every":       "logging:\n  every: 0\n",
		"log level":   "log_level: loud\n",
		"yaml":        "population: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
