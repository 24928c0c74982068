package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

type runOptions struct {
	configPath  string
	generations int
	seed        int64
	metricsAddr string
	logLevel    string
}

func newRootCommand() *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "weasel",
		Short: "Evolve random strings into a target sentence",
		Long: `weasel reads a target sentence and evolves a population of random strings
toward it with fitness-proportional selection, uniform crossover and mutation.
The best string of every generation is printed on its own line.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvolve(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.IntVar(&opts.generations, "generations", 0, "number of generations to run (overrides config)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed, 0 seeds from the clock (overrides config)")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(newRunCommand(opts), newVersionCommand())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of weasel",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weasel version %s\n", version)
		},
	}
}
