package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSodWaveLocations(t *testing.T) {
	var (
		p = NewSod(0.5)
	)
	_, _, _, x4 := p.WaveLocations(0.1)
	assert.True(t, math.Abs(x4-0.6752) < 0.0001)
	_, _, _, x4 = p.WaveLocations(0.2)
	assert.True(t, math.Abs(x4-0.8504) < 0.0001)
	x1, x2, x3, x4 := p.WaveLocations(0.1)
	assert.True(t, x1 < x2 && x2 < x3 && x3 < x4)
	assert.InDelta(t, 0.5-math.Sqrt(1.4)*0.1, x1, 1.e-12)
}

func TestSodIntermediateStates(t *testing.T) {
	// Published reference values for the canonical Sod problem
	var (
		p = NewSod(0.5)
		s = p.solve()
	)
	assert.InDelta(t, 0.30313, s.pPost, 1.e-4)
	assert.InDelta(t, 0.92745, s.vPost, 1.e-4)
	assert.InDelta(t, 0.26557, s.rhoPost, 1.e-4)
	assert.InDelta(t, 0.42632, s.rhoMiddle, 1.e-4)
	assert.InDelta(t, 1.75216, s.vShock, 1.e-4)
}

func TestSodProfile(t *testing.T) {
	var (
		p = NewSod(0.5)
		X = []float64{0.3, 0.45, 0.55, 0.65, 0.9}
	)
	Rho, U, P := p.Sample(X, 0.1)
	// Undisturbed left state
	assert.InDelta(t, 1.0, Rho[0], 1.e-12)
	assert.InDelta(t, 0.0, U[0], 1.e-12)
	// Inside the rarefaction fan
	assert.InDelta(t, 0.6029, Rho[1], 2.e-3)
	assert.InDelta(t, 0.5693, U[1], 2.e-3)
	assert.InDelta(t, 0.4924, P[1], 2.e-3)
	// Between rarefaction tail and contact
	assert.InDelta(t, 0.42632, Rho[2], 1.e-4)
	// Between contact and shock
	assert.InDelta(t, 0.26557, Rho[3], 1.e-4)
	assert.InDelta(t, 0.30313, P[3], 1.e-4)
	// Undisturbed right state
	assert.InDelta(t, 0.125, Rho[4], 1.e-12)
	assert.InDelta(t, 0.1, P[4], 1.e-12)
}

func TestSodInitialData(t *testing.T) {
	var (
		p = NewSod(0.0)
	)
	Rho, U, P := p.Sample([]float64{-0.5, 0.5}, 0)
	assert.Equal(t, []float64{1, 0.125}, Rho)
	assert.Equal(t, []float64{0, 0}, U)
	assert.Equal(t, []float64{1, 0.1}, P)
}

func TestSampleGrid(t *testing.T) {
	var (
		p = NewSod(0.5)
	)
	X, Rho, _, _ := p.SampleGrid(0, 1, 10, 0.1)
	assert.Equal(t, 10, len(X))
	assert.InDelta(t, 0.05, X[0], 1.e-12)
	assert.InDelta(t, 0.95, X[9], 1.e-12)
	assert.Equal(t, 10, len(Rho))
}
