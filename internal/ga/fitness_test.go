package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		candidate Candidate
		target    Candidate
		want      int
	}{
		{"cat", "cat", 3},
		{"bat", "cat", 2},
		{"cab", "cat", 2},
		{"tac", "cat", 1},
		{"bbb", "cat", 0},
		{"", "", 0},
		{"héllo", "hello", 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.candidate)+"/"+string(tt.target), func(t *testing.T) {
			got, err := Score(tt.candidate, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScore_LengthMismatch(t *testing.T) {
	got, err := Score("cat", "ca")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, got)

	_, err = Score("ca", "cat")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScore_BoundsAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := NewAlphabet("abct")

	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(12)
		x := RandomCandidate(n, alphabet, rng)
		y := RandomCandidate(n, alphabet, rng)

		xy, err := Score(x, y)
		require.NoError(t, err)
		yx, err := Score(y, x)
		require.NoError(t, err)

		assert.Equal(t, xy, yx, "score(%q,%q)", x, y)
		assert.GreaterOrEqual(t, xy, 0)
		assert.LessOrEqual(t, xy, n)

		self, err := Score(x, x)
		require.NoError(t, err)
		assert.Equal(t, n, self)
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name     string
		target   Candidate
		alphabet Alphabet
		wantErr  bool
	}{
		{"lowercase with spaces", "methinks it is like a weasel", DefaultAlphabet, false},
		{"empty", "", DefaultAlphabet, false},
		{"uppercase", "Cat", DefaultAlphabet, true},
		{"punctuation", "cat!", DefaultAlphabet, true},
		{"custom alphabet", "cat", NewAlphabet("abct"), false},
		{"empty alphabet", "cat", Alphabet{}, true},
		{"repeated alphabet symbol", "cat", NewAlphabet("abcta"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTarget(tt.target, tt.alphabet)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCandidateLen(t *testing.T) {
	assert.Equal(t, 3, Candidate("cat").Len())
	assert.Equal(t, 5, Candidate("héllo").Len())
	assert.Equal(t, 0, Candidate("").Len())
}
