package ga

import (
	"context"
	"math/rand"
)

// Runner advances a population for a fixed number of generations.
// There is no convergence check: all Generations run even once the
// target has been reached.
type Runner struct {
	Target              Candidate
	Alphabet            Alphabet
	MutationProbability float64
	Generations         int
	Rand                *rand.Rand
}

// Run evolves pop and hands a Report for every generation to observe,
// numbered from 1. It returns the final population. The context is only
// checked between generations.
func (r *Runner) Run(ctx context.Context, pop Population, observe func(Report) error) (Population, error) {
	for gen := 1; gen <= r.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return pop, err
		}

		next, report, err := advance(pop, r.Target, r.MutationProbability, r.Alphabet, r.Rand)
		if err != nil {
			return pop, err
		}
		report.Generation = gen

		if observe != nil {
			if err := observe(report); err != nil {
				return next, err
			}
		}
		pop = next
	}
	return pop, nil
}
