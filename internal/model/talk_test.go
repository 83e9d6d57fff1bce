package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/minisim/internal/agent"
	"github.com/talgya/minisim/internal/model"
	"github.com/talgya/minisim/internal/rng"
)

func Test_Talk_GoldenFixture(t *testing.T) {
	alice := agent.Agent{Resistance: 0.25, Persuasion: 0.8, Preferences: [3]float64{0.6, 0.3, 0.1}}
	bob := agent.Agent{Resistance: 0.7, Persuasion: 0.4, Preferences: [3]float64{0.2, 0.5, 0.3}}

	aPrefs, bPrefs := model.Talk(alice, bob)

	// Generated from the reference implementation.
	assert.InDelta(t, 0.397, aPrefs[0], 1e-9)
	assert.InDelta(t, 0.413, aPrefs[1], 1e-9)
	assert.InDelta(t, 0.190, aPrefs[2], 1e-9)
	assert.InDelta(t, 0.226, bPrefs[0], 1e-9)
	assert.InDelta(t, 0.260, bPrefs[1], 1e-9)
	assert.InDelta(t, 0.514, bPrefs[2], 1e-9)
}

func Test_Talk_OutputsStayOnSimplex(t *testing.T) {
	g := rng.New(99)
	pop := agent.SeedPopulation(40, g)

	for i := 0; i < len(pop)-1; i++ {
		aPrefs, bPrefs := model.Talk(pop[i], pop[i+1])
		for _, prefs := range [][3]float64{aPrefs, bPrefs} {
			sum := 0.0
			for _, p := range prefs {
				assert.GreaterOrEqual(t, p, 0.0)
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	}
}

func Test_Talk_DegenerateMassFallsBackToUniform(t *testing.T) {
	// Zero preference mass on both sides leaves nothing to redistribute.
	zero := agent.Agent{Preferences: [3]float64{0, 0, 0}}

	aPrefs, bPrefs := model.Talk(zero, zero)

	uniform := [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	assert.Equal(t, uniform, aPrefs)
	assert.Equal(t, uniform, bPrefs)
}

func Test_Talk_FullAgreementIsANoOp(t *testing.T) {
	// Both agents fully on option 1: every populated joint state is outside
	// the disagreement rows, so the transition is the identity.
	a := agent.Agent{Resistance: 0.5, Persuasion: 0.5, Preferences: [3]float64{1, 0, 0}}

	aPrefs, bPrefs := model.Talk(a, a)

	assert.Equal(t, [3]float64{1, 0, 0}, aPrefs)
	assert.Equal(t, [3]float64{1, 0, 0}, bPrefs)
}

func Test_Talk_PureFunctionDoesNotMutateInputs(t *testing.T) {
	alice := agent.Agent{Resistance: 0.3, Persuasion: 0.6, Preferences: [3]float64{0.5, 0.4, 0.1}}
	bob := agent.Agent{Resistance: 0.8, Persuasion: 0.2, Preferences: [3]float64{0.1, 0.2, 0.7}}
	aliceBefore, bobBefore := alice, bob

	model.Talk(alice, bob)

	assert.Equal(t, aliceBefore, alice)
	assert.Equal(t, bobBefore, bob)
}
