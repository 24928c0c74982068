package ga

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidInput is returned when an operation's inputs break the engine's
// shape invariants (mismatched lengths, symbols outside the alphabet, ...)
var ErrInvalidInput = errors.New("invalid input")

// Candidate is one fixed-length string of the population.
// Strings are immutable, so every operation returns a new Candidate.
type Candidate string

// Len returns the number of symbols (runes) in the candidate
func (c Candidate) Len() int {
	return utf8.RuneCountInString(string(c))
}

// Score counts the positions at which x and y hold the same symbol.
// Both must have the same length; a mismatch is never scored partially.
func Score(x, y Candidate) (int, error) {
	xs, ys := []rune(x), []rune(y)
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: cannot score %q against %q: lengths differ (%d != %d)",
			ErrInvalidInput, x, y, len(xs), len(ys))
	}

	score := 0
	for i := range xs {
		if xs[i] == ys[i] {
			score++
		}
	}
	return score, nil
}

// ValidateTarget checks that target is spelled only with symbols from
// alphabet. An empty target is valid: every candidate is empty and matches.
func ValidateTarget(target Candidate, alphabet Alphabet) error {
	if err := alphabet.Validate(); err != nil {
		return err
	}
	for i, r := range []rune(target) {
		if !alphabet.Contains(r) {
			return fmt.Errorf("%w: target symbol %q at position %d is not in alphabet %q",
				ErrInvalidInput, r, i, alphabet.String())
		}
	}
	return nil
}
