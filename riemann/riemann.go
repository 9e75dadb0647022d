/*
Package riemann holds the approximate Riemann solvers at the heart of the
wave-propagation schemes. A solver decomposes the jump between two adjacent
states into a small fixed number of traveling waves, each with a strength
vector and a speed, such that

	sum_k Wave_k           = qR - qL
	sum_k Speed_k * Wave_k = f(qR) - f(qL)

The second relation splits by speed sign into the left- and right-going
fluctuations Amdq and Apdq consumed by the update schemes.
*/
package riemann

import (
	"fmt"

	"github.com/notargets/gofv/equations"
)

// Fan is the wave decomposition at a single interface
type Fan struct {
	Waves  [][]float64 // Waves[k] is the strength vector of wave k
	Speeds []float64
	Amdq   []float64 // A-dQ, flux difference carried by left-going waves
	Apdq   []float64 // A+dQ, flux difference carried by right-going waves
}

type Solver interface {
	Name() string
	// NumWaves is the maximum number of waves a decomposition can carry
	NumWaves() int
	Solve(qL, qR []float64) (Fan, error)
}

// NewFan allocates a decomposition with nw waves of neq components each
func NewFan(nw, neq int) (f Fan) {
	f = Fan{
		Waves:  make([][]float64, nw),
		Speeds: make([]float64, nw),
		Amdq:   make([]float64, neq),
		Apdq:   make([]float64, neq),
	}
	for k := range f.Waves {
		f.Waves[k] = make([]float64, neq)
	}
	return
}

// MaxSpeed is the largest wave speed magnitude in the fan
func (f Fan) MaxSpeed() (lm float64) {
	for _, s := range f.Speeds {
		if s < 0 {
			s = -s
		}
		if s > lm {
			lm = s
		}
	}
	return
}

// fluctuate fills Amdq/Apdq from the waves by sign of the wave speed. A wave
// with exactly zero speed carries no flux difference and contributes to
// neither side, which keeps stationary discontinuities stationary.
func (f *Fan) fluctuate() {
	for i := range f.Amdq {
		f.Amdq[i], f.Apdq[i] = 0, 0
	}
	for k, s := range f.Speeds {
		switch {
		case s < 0:
			for i, w := range f.Waves[k] {
				f.Amdq[i] += s * w
			}
		case s > 0:
			for i, w := range f.Waves[k] {
				f.Apdq[i] += s * w
			}
		}
	}
}

// fluctuateSplit distributes each wave using explicit left/right-going speed
// fractions sm_k <= 0 <= sp_k with sm_k + sp_k = Speed_k, as produced by the
// Harten entropy smoothing of a transonic eigenvalue
func (f *Fan) fluctuateSplit(sm, sp []float64) {
	for i := range f.Amdq {
		f.Amdq[i], f.Apdq[i] = 0, 0
	}
	for k := range f.Speeds {
		for i, w := range f.Waves[k] {
			f.Amdq[i] += sm[k] * w
			f.Apdq[i] += sp[k] * w
		}
	}
}

// NewSolver selects a solver strategy by configuration name. The entropyFix
// option applies to the scalar Roe solver only; HLL never needs one.
func NewSolver(fluxType string, sys equations.System, entropyFix bool) (Solver, error) {
	switch sys := sys.(type) {
	case equations.Burgers:
		switch fluxType {
		case "Roe":
			return NewRoeBurgers(entropyFix), nil
		case "HLL":
			return NewHLLBurgers(), nil
		}
	case *equations.Euler:
		switch fluxType {
		case "Roe":
			return NewRoeEuler(sys), nil
		case "HLL":
			return NewHLLEuler(sys), nil
		}
	default:
		return nil, fmt.Errorf("no riemann solver for system %s", sys.Name())
	}
	return nil, fmt.Errorf("unknown flux type %q, want Roe or HLL", fluxType)
}
