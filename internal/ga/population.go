package ga

import (
	"fmt"
	"math/rand"
)

// Population is the ordered set of candidates of one generation
type Population []Candidate

// NewPopulation creates size random candidates of the given length
func NewPopulation(size, length int, alphabet Alphabet, rng *rand.Rand) Population {
	p := make(Population, size)
	for i := range p {
		p[i] = RandomCandidate(length, alphabet, rng)
	}
	return p
}

// Size returns the population size
func (p Population) Size() int {
	return len(p)
}

// Scores returns the fitness of every candidate against target, in order
func (p Population) Scores(target Candidate) ([]int, error) {
	scores := make([]int, len(p))
	for i, c := range p {
		s, err := Score(c, target)
		if err != nil {
			return nil, fmt.Errorf("scoring candidate %d: %w", i, err)
		}
		scores[i] = s
	}
	return scores, nil
}

// Best returns the fittest candidate and its fitness.
// Ties go to the lexicographically greatest candidate.
func (p Population) Best(target Candidate) (Candidate, int, error) {
	if len(p) == 0 {
		return "", 0, fmt.Errorf("%w: empty population", ErrInvalidInput)
	}
	scores, err := p.Scores(target)
	if err != nil {
		return "", 0, err
	}
	best, fitness := bestOf(p, scores)
	return best, fitness, nil
}

// bestOf is the maximum of the (fitness, candidate) pairs
func bestOf(p Population, scores []int) (Candidate, int) {
	best, fitness := p[0], scores[0]
	for i := 1; i < len(p); i++ {
		if scores[i] > fitness || (scores[i] == fitness && p[i] > best) {
			best, fitness = p[i], scores[i]
		}
	}
	return best, fitness
}

func meanOf(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
