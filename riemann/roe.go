package riemann

import (
	"math"

	"github.com/notargets/gofv/equations"
)

// RoeBurgers is the scalar Roe linearization: a single wave carrying the
// full jump at the Rankine-Hugoniot speed (qL+qR)/2, exact for an isolated
// shock. With EntropyFix enabled, a transonic interface (qL < 0 < qR) is
// split at the sonic point into a left-going and a right-going wave, which
// restores the bidirectional rarefaction a single wave would collapse into
// an entropy-violating expansion shock.
type RoeBurgers struct {
	EntropyFix bool
	eqn        equations.Burgers
}

func NewRoeBurgers(entropyFix bool) *RoeBurgers {
	return &RoeBurgers{
		EntropyFix: entropyFix,
		eqn:        equations.NewBurgers(),
	}
}

func (r *RoeBurgers) Name() string {
	if r.EntropyFix {
		return "Roe (entropy fix)"
	}
	return "Roe"
}

func (r *RoeBurgers) NumWaves() int { return 2 }

func (r *RoeBurgers) Solve(qL, qR []float64) (f Fan, err error) {
	if err = r.eqn.CheckState(qL); err != nil {
		return
	}
	if err = r.eqn.CheckState(qR); err != nil {
		return
	}
	var (
		ql, qr = qL[0], qR[0]
		shat   = 0.5 * (ql + qr)
	)
	f = NewFan(2, 1)
	if r.EntropyFix && ql < 0 && qr > 0 {
		// Transonic: split the jump at the sonic point qm where f'(qm) = 0
		const qm = 0
		f.Waves[0][0] = qm - ql
		f.Speeds[0] = 0.5 * (ql + qm)
		f.Waves[1][0] = qr - qm
		f.Speeds[1] = 0.5 * (qm + qr)
	} else {
		f.Waves[0][0] = qr - ql
		f.Speeds[0] = shat
		f.Speeds[1] = shat // second slot unused, zero strength
	}
	f.fluctuate()
	return
}

// RoeEuler linearizes the Euler flux Jacobian at the Roe-averaged state and
// projects the jump onto its three eigenvectors (acoustic, entropy/contact,
// acoustic). Exact for an isolated shock.
type RoeEuler struct {
	// HartenFix smooths eigenvalue magnitudes near zero before the
	// fluctuation split, suppressing expansion shocks in transonic
	// rarefactions. Off by default; the delta is c/20 when enabled.
	HartenFix bool
	eqn       *equations.Euler
}

func NewRoeEuler(eqn *equations.Euler) *RoeEuler {
	return &RoeEuler{eqn: eqn}
}

func (r *RoeEuler) Name() string { return "Roe" }

func (r *RoeEuler) NumWaves() int { return 3 }

func (r *RoeEuler) Solve(qL, qR []float64) (f Fan, err error) {
	if err = r.eqn.CheckState(qL); err != nil {
		return
	}
	if err = r.eqn.CheckState(qR); err != nil {
		return
	}
	var (
		gm1     = r.eqn.Gamma - 1.
		u, h, c float64
	)
	if u, h, c, err = r.eqn.RoeAverage(qL, qR); err != nil {
		return
	}
	var (
		d1 = qR[0] - qL[0]
		d2 = qR[1] - qL[1]
		d3 = qR[2] - qL[2]
		// Projection of the jump onto the eigenvector basis
		a2 = gm1 * ((h-u*u)*d1 + u*d2 - d3) / (c * c)
		a3 = (d2 + (c-u)*d1 - c*a2) / (2 * c)
		a1 = d1 - a2 - a3
	)
	f = NewFan(3, 3)
	f.Speeds[0] = u - c
	f.Waves[0][0] = a1
	f.Waves[0][1] = a1 * (u - c)
	f.Waves[0][2] = a1 * (h - u*c)

	f.Speeds[1] = u
	f.Waves[1][0] = a2
	f.Waves[1][1] = a2 * u
	f.Waves[1][2] = a2 * 0.5 * u * u

	f.Speeds[2] = u + c
	f.Waves[2][0] = a3
	f.Waves[2][1] = a3 * (u + c)
	f.Waves[2][2] = a3 * (h + u*c)

	if r.HartenFix {
		var (
			delta  = c / 20
			sm, sp [3]float64
		)
		for k, s := range f.Speeds {
			phi := hartenPhi(s, delta)
			sm[k] = 0.5 * (s - phi)
			sp[k] = 0.5 * (s + phi)
		}
		f.fluctuateSplit(sm[:], sp[:])
	} else {
		f.fluctuate()
	}
	return
}

// hartenPhi is the Harten entropy correction: |eig| away from zero, a
// parabolic blend within delta of zero so the characteristic never sticks
func hartenPhi(eig, del float64) (res float64) {
	absLam := math.Abs(eig)
	if absLam > del {
		res = absLam
	} else {
		res = (eig*eig + del*del) / (2 * del)
	}
	return
}
