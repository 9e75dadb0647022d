package riemann

import (
	"math"

	"github.com/notargets/gofv/equations"
)

// hllMiddle solves the two-wave conservation conditions
//
//	s1 (qm - qL) = f(qm) - f(qL)
//	s2 (qR - qm) = f(qR) - f(qm)
//
// for the single intermediate state, which is closed-form once s1 and s2
// are fixed: qm = (fR - fL - s2 qR + s1 qL) / (s1 - s2)
func hllMiddle(qL, qR, fL, fR []float64, s1, s2 float64) (qm []float64) {
	var (
		oods = 1. / (s1 - s2)
	)
	qm = make([]float64, len(qL))
	for i := range qm {
		qm[i] = (fR[i] - fL[i] - s2*qR[i] + s1*qL[i]) * oods
	}
	return
}

func equalStates(qL, qR []float64) bool {
	for i, v := range qL {
		if v != qR[i] {
			return false
		}
	}
	return true
}

func hllFan(qL, qR, fL, fR []float64, s1, s2 float64) (f Fan) {
	var (
		neq = len(qL)
	)
	f = NewFan(2, neq)
	f.Speeds[0], f.Speeds[1] = s1, s2
	if equalStates(qL, qR) {
		// Degenerate interface: zero-strength waves, exactly zero fluctuations
		f.fluctuate()
		return
	}
	if s1 == s2 {
		// Coincident bounds with a genuine jump, e.g. pressureless states
		// sharing one velocity. The whole jump moves at that single speed.
		for i := range qL {
			f.Waves[0][i] = qR[i] - qL[i]
		}
		f.fluctuate()
		return
	}
	qm := hllMiddle(qL, qR, fL, fR, s1, s2)
	for i := range qm {
		f.Waves[0][i] = qm[i] - qL[i]
		f.Waves[1][i] = qR[i] - qm[i]
	}
	f.fluctuate()
	return
}

// HLLBurgers bounds the scalar characteristic speeds with
// s1 = min(qL, qR), s2 = max(qL, qR). The resulting intermediate state is
// (qL+qR)/2 regardless of sign, so each wave carries half the jump. Note
// the single-wave Roe solver remains the validated default for Burgers;
// this two-wave variant is strictly more dissipative.
type HLLBurgers struct {
	eqn equations.Burgers
}

func NewHLLBurgers() *HLLBurgers {
	return &HLLBurgers{eqn: equations.NewBurgers()}
}

func (r *HLLBurgers) Name() string { return "HLL" }

func (r *HLLBurgers) NumWaves() int { return 2 }

func (r *HLLBurgers) Solve(qL, qR []float64) (f Fan, err error) {
	if err = r.eqn.CheckState(qL); err != nil {
		return
	}
	if err = r.eqn.CheckState(qR); err != nil {
		return
	}
	var (
		s1 = math.Min(qL[0], qR[0])
		s2 = math.Max(qL[0], qR[0])
	)
	f = hllFan(qL, qR, r.eqn.Flux(qL), r.eqn.Flux(qR), s1, s2)
	return
}

// HLLEuler bounds the signal speeds with the extreme acoustic
// characteristics u-c and u+c of both input states. Always conservative
// with no characteristic decomposition, but the contact discontinuity is
// smeared into the single averaged middle state.
type HLLEuler struct {
	eqn *equations.Euler
}

func NewHLLEuler(eqn *equations.Euler) *HLLEuler {
	return &HLLEuler{eqn: eqn}
}

func (r *HLLEuler) Name() string { return "HLL" }

func (r *HLLEuler) NumWaves() int { return 2 }

func (r *HLLEuler) Solve(qL, qR []float64) (f Fan, err error) {
	if err = r.eqn.CheckState(qL); err != nil {
		return
	}
	if err = r.eqn.CheckState(qR); err != nil {
		return
	}
	var (
		uL, uR = qL[1] / qL[0], qR[1] / qR[0]
		cL, cR = r.eqn.SoundSpeed(qL), r.eqn.SoundSpeed(qR)
		s1     = math.Min(uL-cL, uR-cR)
		s2     = math.Max(uL+cL, uR+cR)
	)
	f = hllFan(qL, qR, r.eqn.Flux(qL), r.eqn.Flux(qR), s1, s2)
	return
}
