package ga

import (
	"math/rand"
)

// Mutate returns a copy of c where each symbol, with probability p, is
// replaced by a uniformly drawn alphabet symbol (possibly the same one).
// c itself is left untouched.
func Mutate(c Candidate, p float64, alphabet Alphabet, rng *rand.Rand) Candidate {
	in := []rune(c)
	out := make([]rune, len(in))
	for i, r := range in {
		if rng.Float64() < p {
			out[i] = alphabet.Random(rng)
		} else {
			out[i] = r
		}
	}
	return Candidate(out)
}

// RandomCandidate draws n symbols independently and uniformly from alphabet
func RandomCandidate(n int, alphabet Alphabet, rng *rand.Rand) Candidate {
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet.Random(rng)
	}
	return Candidate(out)
}
