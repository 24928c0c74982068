package ga

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	target := Candidate("cat")
	r := &Runner{
		Target:              target,
		Alphabet:            DefaultAlphabet,
		MutationProbability: 0.2,
		Generations:         300,
		Rand:                rng,
	}
	pop := NewPopulation(100, target.Len(), DefaultAlphabet, rng)

	var reports []Report
	final, err := r.Run(context.Background(), pop, func(rep Report) error {
		reports = append(reports, rep)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, reports, 300)
	assert.Len(t, final, 100)

	for i, rep := range reports {
		assert.Equal(t, i+1, rep.Generation)
		assert.Len(t, rep.Population, 100)
		if i > 0 {
			assert.GreaterOrEqual(t, rep.BestFitness, reports[i-1].BestFitness, "elitism keeps best fitness monotone")
		}
		assert.LessOrEqual(t, rep.MeanFitness, float64(rep.BestFitness))
	}
	assert.Equal(t, target, reports[len(reports)-1].Best)
}

func TestRunner_ObserverErrorStops(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	r := &Runner{Target: "cat", Alphabet: DefaultAlphabet, MutationProbability: 0.2, Generations: 10, Rand: rng}
	boom := errors.New("boom")

	calls := 0
	_, err := r.Run(context.Background(), NewPopulation(5, 3, DefaultAlphabet, rng), func(Report) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestRunner_Cancelled(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	r := &Runner{Target: "cat", Alphabet: DefaultAlphabet, MutationProbability: 0.2, Generations: 10, Rand: rng}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pop := NewPopulation(5, 3, DefaultAlphabet, rng)
	got, err := r.Run(ctx, pop, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, pop, got)
}

func TestRunner_ZeroGenerations(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	r := &Runner{Target: "cat", Alphabet: DefaultAlphabet, Generations: 0, Rand: rng}
	pop := NewPopulation(5, 3, DefaultAlphabet, rng)

	got, err := r.Run(context.Background(), pop, func(Report) error {
		t.Fatal("observer must not be called")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, pop, got)
}
