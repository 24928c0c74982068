package ga

import (
	"fmt"
	"math/rand"
)

// Alphabet is the ordered set of symbols a candidate may contain
type Alphabet []rune

// DefaultAlphabet is a space followed by the lowercase latin letters
var DefaultAlphabet = NewAlphabet(" abcdefghijklmnopqrstuvwxyz")

// NewAlphabet builds an alphabet from the runes of s, in order
func NewAlphabet(s string) Alphabet {
	return Alphabet([]rune(s))
}

// Validate checks the alphabet is non-empty and holds no repeated symbol
func (a Alphabet) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("%w: empty alphabet", ErrInvalidInput)
	}
	seen := make(map[rune]struct{}, len(a))
	for _, r := range a {
		if _, ok := seen[r]; ok {
			return fmt.Errorf("%w: alphabet repeats symbol %q", ErrInvalidInput, r)
		}
		seen[r] = struct{}{}
	}
	return nil
}

// Contains reports whether r is one of the alphabet's symbols
func (a Alphabet) Contains(r rune) bool {
	for _, s := range a {
		if s == r {
			return true
		}
	}
	return false
}

// Random draws one symbol uniformly
func (a Alphabet) Random(rng *rand.Rand) rune {
	return a[rng.Intn(len(a))]
}

func (a Alphabet) String() string {
	return string(a)
}
