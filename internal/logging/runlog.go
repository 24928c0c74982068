package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"weasel/internal/ga"
)

// RunLog records one summary per logged generation as CSV rows and/or JSON
// lines. Either path may be empty to disable that sink.
type RunLog struct {
	RunID string

	csvPath   string
	jsonPath  string
	every     int
	final     int
	csvFile   *os.File
	csvWriter *csv.Writer
	jsonFile  *os.File
	enc       *json.Encoder
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	RunID        string  `json:"run_id"`
	Generation   int     `json:"generation"`
	Best         string  `json:"best"`
	BestFitness  int     `json:"best_fitness"`
	MeanFitness  float64 `json:"mean_fitness"`
	TargetLength int     `json:"target_length"`
}

// OpenRunLog creates the log files (and their directories) and writes the
// CSV header. every controls sampling: only generations divisible by it,
// plus the first and the final one (generations), are recorded.
func OpenRunLog(csvPath, jsonPath string, every, generations int) (*RunLog, error) {
	if every < 1 {
		every = 1
	}
	l := &RunLog{
		RunID:    uuid.NewString(),
		csvPath:  csvPath,
		jsonPath: jsonPath,
		every:    every,
		final:    generations,
	}

	if csvPath != "" {
		f, err := create(csvPath)
		if err != nil {
			return nil, err
		}
		l.csvFile = f
		l.csvWriter = csv.NewWriter(f)

		header := []string{"run_id", "generation", "best", "best_fitness", "mean_fitness", "target_length"}
		if err := l.csvWriter.Write(header); err != nil {
			l.Close()
			return nil, err
		}
	}

	if jsonPath != "" {
		f, err := create(jsonPath)
		if err != nil {
			l.Close()
			return nil, err
		}
		l.jsonFile = f
		l.enc = json.NewEncoder(f)
	}

	return l, nil
}

func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

// Enabled reports whether at least one sink is open
func (l *RunLog) Enabled() bool {
	return l.csvWriter != nil || l.enc != nil
}

// LogGeneration records a generation report
func (l *RunLog) LogGeneration(r ga.Report, targetLength int) error {
	if !l.Enabled() || !l.sampled(r.Generation) {
		return nil
	}

	summary := GenerationSummary{
		RunID:        l.RunID,
		Generation:   r.Generation,
		Best:         string(r.Best),
		BestFitness:  r.BestFitness,
		MeanFitness:  r.MeanFitness,
		TargetLength: targetLength,
	}

	if l.csvWriter != nil {
		row := []string{
			summary.RunID,
			strconv.Itoa(summary.Generation),
			summary.Best,
			strconv.Itoa(summary.BestFitness),
			fmt.Sprintf("%.2f", summary.MeanFitness),
			strconv.Itoa(summary.TargetLength),
		}
		if err := l.csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", l.csvPath, err)
		}
		l.csvWriter.Flush()
		if err := l.csvWriter.Error(); err != nil {
			return fmt.Errorf("writing %s: %w", l.csvPath, err)
		}
	}

	if l.enc != nil {
		if err := l.enc.Encode(summary); err != nil {
			return fmt.Errorf("writing %s: %w", l.jsonPath, err)
		}
	}
	return nil
}

func (l *RunLog) sampled(gen int) bool {
	return gen == 1 || gen == l.final || gen%l.every == 0
}

// Close flushes and closes all log files
func (l *RunLog) Close() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if l.csvWriter != nil {
		l.csvWriter.Flush()
		keep(l.csvWriter.Error())
	}
	if l.csvFile != nil {
		keep(l.csvFile.Close())
	}
	if l.jsonFile != nil {
		keep(l.jsonFile.Close())
	}
	return firstErr
}
