package ga

import (
	"fmt"
	"math/rand"
)

// Crossover performs uniform crossover between two parents of equal length.
// Each position independently takes p1's symbol with probability 0.5,
// otherwise p2's.
func Crossover(p1, p2 Candidate, rng *rand.Rand) (Candidate, error) {
	a, b := []rune(p1), []rune(p2)
	if len(a) != len(b) {
		return "", fmt.Errorf("%w: cannot cross %q with %q: lengths differ (%d != %d)",
			ErrInvalidInput, p1, p2, len(a), len(b))
	}

	child := make([]rune, len(a))
	for i := range a {
		if rng.Float64() < 0.5 {
			child[i] = a[i]
		} else {
			child[i] = b[i]
		}
	}
	return Candidate(child), nil
}
