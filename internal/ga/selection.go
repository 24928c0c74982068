package ga

import (
	"fmt"
	"math/rand"
	"sort"
)

// SelectionWeights turns fitness scores into selection weights.
// The +1 keeps candidates that match nowhere selectable.
func SelectionWeights(scores []int) []int {
	weights := make([]int, len(scores))
	for i, s := range scores {
		weights[i] = s + 1
	}
	return weights
}

// Roulette samples indices with probability weight/sum(weights).
// Weights are kept as exact integer prefix sums.
type Roulette struct {
	cumulative []int
}

// NewRoulette builds a sampler over weights. At least one weight must be
// positive and none may be negative.
func NewRoulette(weights []int) (*Roulette, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no selection weights", ErrInvalidInput)
	}

	cumulative := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative selection weight %d at index %d", ErrInvalidInput, w, i)
		}
		total += w
		cumulative[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: selection weights sum to zero", ErrInvalidInput)
	}

	return &Roulette{cumulative: cumulative}, nil
}

// Total returns the sum of all weights
func (r *Roulette) Total() int {
	return r.cumulative[len(r.cumulative)-1]
}

// Pick draws one index; draws are independent and with replacement
func (r *Roulette) Pick(rng *rand.Rand) int {
	x := rng.Intn(r.Total())
	return sort.Search(len(r.cumulative), func(i int) bool {
		return r.cumulative[i] > x
	})
}

// SelectParents draws two parents from pop independently through the roulette
func SelectParents(pop Population, r *Roulette, rng *rand.Rand) (Candidate, Candidate) {
	p1 := pop[r.Pick(rng)]
	p2 := pop[r.Pick(rng)]
	return p1, p2
}
