package riemann

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofv/equations"
)

func TestRoeShockExactness(t *testing.T) {
	// States on a single Hugoniot locus: the Roe wave speed must equal the
	// exact Rankine-Hugoniot shock speed (qL+qR)/2
	var (
		rs = NewRoeBurgers(false)
	)
	fan, err := rs.Solve([]float64{2}, []float64{1})
	assert.NoError(t, err)
	assert.InDelta(t, 1.5, fan.Speeds[0], 1.e-14)
	assert.InDelta(t, -1, fan.Waves[0][0], 1.e-14)
	assert.Equal(t, 0., fan.Waves[1][0])
	// Right-going shock: the whole flux jump goes to Apdq
	assert.InDelta(t, 0., fan.Amdq[0], 1.e-14)
	assert.InDelta(t, -1.5, fan.Apdq[0], 1.e-14)
}

func TestEntropyFixTransonic(t *testing.T) {
	// qL < 0 < qR: without the fix, a single entropy-violating wave at
	// speed (qL+qR)/2; with it, the jump splits at the sonic point
	var (
		unfixed = NewRoeBurgers(false)
		fixed   = NewRoeBurgers(true)
		qL, qR  = []float64{-1}, []float64{2}
	)
	fan, err := unfixed.Solve(qL, qR)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, fan.Speeds[0], 1.e-14)
	assert.InDelta(t, 3, fan.Waves[0][0], 1.e-14)
	assert.Equal(t, 0., fan.Waves[1][0])

	fan, err = fixed.Solve(qL, qR)
	assert.NoError(t, err)
	assert.InDelta(t, -0.5, fan.Speeds[0], 1.e-14)
	assert.InDelta(t, 1.0, fan.Speeds[1], 1.e-14)
	assert.InDelta(t, 3, fan.Waves[0][0]+fan.Waves[1][0], 1.e-14)
	// The split sends the left-going part of the rarefaction leftward
	assert.InDelta(t, -0.5, fan.Amdq[0], 1.e-14)
	assert.InDelta(t, 2.0, fan.Apdq[0], 1.e-14)
}

func TestEntropyFixInactiveOutsideTransonic(t *testing.T) {
	// The fix must not alter non-transonic interfaces, shock or rarefaction
	var (
		unfixed = NewRoeBurgers(false)
		fixed   = NewRoeBurgers(true)
		pairs   = [][2]float64{{2, 1}, {1, 2}, {-2, -1}, {0, 1}}
	)
	for _, p := range pairs {
		qL, qR := []float64{p[0]}, []float64{p[1]}
		fu, err := unfixed.Solve(qL, qR)
		assert.NoError(t, err)
		ff, err := fixed.Solve(qL, qR)
		assert.NoError(t, err)
		assert.Equal(t, fu, ff)
	}
}

func TestRoeEulerWaveStructure(t *testing.T) {
	// Three waves ordered u-c, u, u+c at the Roe-averaged state
	var (
		eq = equations.NewEuler(1.4)
		rs = NewRoeEuler(eq)
		qL = eq.ConservedFromPrimitive(1, 0, 1)
		qR = eq.ConservedFromPrimitive(0.125, 0, 0.1)
	)
	fan, err := rs.Solve(qL, qR)
	assert.NoError(t, err)
	u, _, c, err := eq.RoeAverage(qL, qR)
	assert.NoError(t, err)
	assert.InDelta(t, u-c, fan.Speeds[0], 1.e-14)
	assert.InDelta(t, u, fan.Speeds[1], 1.e-14)
	assert.InDelta(t, u+c, fan.Speeds[2], 1.e-14)
	assert.True(t, fan.Speeds[0] < fan.Speeds[1] && fan.Speeds[1] < fan.Speeds[2])
}

func TestHartenFixConservation(t *testing.T) {
	// The smoothed eigenvalue split must preserve Amdq + Apdq = flux jump
	var (
		eq = equations.NewEuler(1.4)
		rs = NewRoeEuler(eq)
		qL = eq.ConservedFromPrimitive(1, 0.9, 0.3) // near-sonic state
		qR = eq.ConservedFromPrimitive(0.9, 1.1, 0.25)
	)
	rs.HartenFix = true
	fan, err := rs.Solve(qL, qR)
	assert.NoError(t, err)
	fL, fR := eq.Flux(qL), eq.Flux(qR)
	for n := 0; n < 3; n++ {
		assert.InDelta(t, fR[n]-fL[n], fan.Amdq[n]+fan.Apdq[n], 1.e-12)
	}
}
