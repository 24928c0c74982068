package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"weasel/internal/config"
	"weasel/internal/ga"
	"weasel/internal/logging"
	"weasel/internal/metrics"
	"weasel/internal/prompt"
)

func newRunCommand(opts *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Read a target sentence and evolve toward it (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvolve(cmd, opts)
		},
	}
}

// loadConfig reads the config file, if any, then applies flags the user set
func loadConfig(cmd *cobra.Command, opts *runOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("generations") {
		cfg.Generations = opts.generations
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runEvolve(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	level, _ := cfg.SlogLevel()
	logger := logging.New(cmd.ErrOrStderr(), level)

	// 1. Target
	in := cmd.InOrStdin()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = prompt.IsTerminal(f)
	}
	line, err := prompt.ReadTarget(in, cmd.ErrOrStderr(), interactive)
	if err != nil {
		return err
	}
	target := ga.Candidate(line)
	alphabet := cfg.GAAlphabet()
	if err := ga.ValidateTarget(target, alphabet); err != nil {
		return err
	}

	// 2. RNG
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// 3. Run log and metrics
	runLog, err := logging.OpenRunLog(cfg.Logging.CSVPath, cfg.Logging.JSONPath, cfg.Logging.Every, cfg.Generations)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer func() {
		if err := runLog.Close(); err != nil {
			logger.Warn("failed to close run log", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}
	collector.TargetLength.Set(float64(target.Len()))
	if cfg.Metrics.Addr != "" {
		if _, err := metrics.Serve(ctx, cfg.Metrics.Addr, reg, logger); err != nil {
			return err
		}
	}

	logger.Info("starting run",
		"run_id", runLog.RunID,
		"seed", seed,
		"population", cfg.Population,
		"generations", cfg.Generations,
		"mutation_probability", cfg.MutationProbability,
		"target_length", target.Len(),
	)

	// 4. Evolve
	runner := &ga.Runner{
		Target:              target,
		Alphabet:            alphabet,
		MutationProbability: cfg.MutationProbability,
		Generations:         cfg.Generations,
		Rand:                rng,
	}
	pop := ga.NewPopulation(cfg.Population, target.Len(), alphabet, rng)

	out := cmd.OutOrStdout()
	var last ga.Report
	start := time.Now()
	_, err = runner.Run(ctx, pop, func(r ga.Report) error {
		if _, err := fmt.Fprintln(out, r.Best); err != nil {
			return err
		}
		collector.Observe(r)
		logger.Debug("generation",
			"generation", r.Generation,
			"best", string(r.Best),
			"best_fitness", r.BestFitness,
			"mean_fitness", r.MeanFitness,
		)
		if err := runLog.LogGeneration(r, target.Len()); err != nil {
			return err
		}
		last = r
		return nil
	})
	if err != nil {
		return fmt.Errorf("generation %d: %w", last.Generation+1, err)
	}

	logger.Info("run complete",
		"run_id", runLog.RunID,
		"generations", last.Generation,
		"best", string(last.Best),
		"best_fitness", last.BestFitness,
		"elapsed", time.Since(start),
	)
	return nil
}
