package ga

import (
	"fmt"
	"math/rand"
)

// Report summarises one scored generation
type Report struct {
	Generation  int
	Best        Candidate
	BestFitness int
	MeanFitness float64
	// Population is the generation that was scored, not its offspring
	Population Population
}

// NextGeneration breeds the population that follows pop and returns it
// together with pop's best candidate.
//
// The first len(pop)-1 slots are offspring: two parents are drawn with
// probability proportional to fitness+1, crossed over and mutated with
// per-symbol probability p. The last slot is pop's best candidate, unchanged.
func NextGeneration(pop Population, target Candidate, p float64, alphabet Alphabet, rng *rand.Rand) (Population, Candidate, error) {
	next, report, err := advance(pop, target, p, alphabet, rng)
	if err != nil {
		return nil, "", err
	}
	return next, report.Best, nil
}

func advance(pop Population, target Candidate, p float64, alphabet Alphabet, rng *rand.Rand) (Population, Report, error) {
	if len(pop) == 0 {
		return nil, Report{}, fmt.Errorf("%w: empty population", ErrInvalidInput)
	}

	// 1. Score
	scores, err := pop.Scores(target)
	if err != nil {
		return nil, Report{}, err
	}

	// 2. Fitness-proportional roulette
	roulette, err := NewRoulette(SelectionWeights(scores))
	if err != nil {
		return nil, Report{}, err
	}

	// 3. Offspring
	next := make(Population, 0, len(pop))
	for i := 0; i < len(pop)-1; i++ {
		p1, p2 := SelectParents(pop, roulette, rng)
		child, err := Crossover(p1, p2, rng)
		if err != nil {
			return nil, Report{}, err
		}
		next = append(next, Mutate(child, p, alphabet, rng))
	}

	// 4. Elitism
	best, fitness := bestOf(pop, scores)
	next = append(next, best)

	return next, Report{
		Best:        best,
		BestFitness: fitness,
		MeanFitness: meanOf(scores),
		Population:  pop,
	}, nil
}
