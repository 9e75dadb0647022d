package equations

import (
	"fmt"
	"math"

	"github.com/notargets/gofv/utils"
)

// Euler is the 1D compressible Euler system for a calorically perfect gas.
// Conserved variables are ordered [Rho, RhoU, Ener].
type Euler struct {
	Gamma float64
}

func NewEuler(gamma float64) *Euler {
	if gamma <= 1 {
		panic("gamma must be greater than one")
	}
	return &Euler{Gamma: gamma}
}

func (e *Euler) Name() string { return "Euler" }

func (e *Euler) NumEquations() int { return 3 }

func (e *Euler) Pressure(q []float64) float64 {
	var (
		rho, rhoU, ener = q[0], q[1], q[2]
	)
	return (e.Gamma - 1.) * (ener - 0.5*utils.POW(rhoU, 2)/rho)
}

func (e *Euler) SoundSpeed(q []float64) float64 {
	return math.Sqrt(e.Gamma * e.Pressure(q) / q[0])
}

// Enthalpy is the total specific enthalpy Ht = (Ener + p) / Rho
func (e *Euler) Enthalpy(q []float64) float64 {
	return (q[2] + e.Pressure(q)) / q[0]
}

func (e *Euler) Flux(q []float64) []float64 {
	var (
		rho, rhoU, ener = q[0], q[1], q[2]
		u               = rhoU / rho
		p               = e.Pressure(q)
	)
	return []float64{
		rhoU,
		rhoU*u + p,
		u * (ener + p),
	}
}

func (e *Euler) MaxSpeed(q []float64) float64 {
	return math.Abs(q[1]/q[0]) + e.SoundSpeed(q)
}

func (e *Euler) CheckState(q []float64) error {
	if len(q) != 3 {
		return fmt.Errorf("%w: want 3 components, have %d", ErrDimension, len(q))
	}
	if err := checkFinite(q); err != nil {
		return err
	}
	if q[0] <= 0 {
		return fmt.Errorf("%w: rho = %v", ErrDensityNotPositive, q[0])
	}
	if p := e.Pressure(q); p < 0 {
		return fmt.Errorf("%w: p = %v", ErrPressureNegative, p)
	}
	return nil
}

// ConservedFromPrimitive builds [Rho, RhoU, Ener] from primitive (rho, u, p)
func (e *Euler) ConservedFromPrimitive(rho, u, p float64) []float64 {
	q := 0.5 * rho * u * u
	return []float64{
		rho,
		rho * u,
		p/(e.Gamma-1.) + q,
	}
}

// RoeAverage computes the density-weighted Roe average of velocity, total
// enthalpy and sound speed between two states, using sqrt(rho) weights. The
// averaged state diagonalizes a flux Jacobian that satisfies the Roe
// property A(qR - qL) = f(qR) - f(qL) exactly, with no iteration.
func (e *Euler) RoeAverage(qL, qR []float64) (u, h, c float64, err error) {
	var (
		srL, srR = math.Sqrt(qL[0]), math.Sqrt(qR[0])
		uL, uR   = qL[1] / qL[0], qR[1] / qR[0]
		hL, hR   = e.Enthalpy(qL), e.Enthalpy(qR)
		oosr     = 1. / (srL + srR)
	)
	u = (srL*uL + srR*uR) * oosr
	h = (srL*hL + srR*hR) * oosr
	c2 := (e.Gamma - 1.) * (h - 0.5*u*u)
	if c2 <= 0 {
		err = fmt.Errorf("%w: averaged sound speed squared = %v",
			ErrPressureNegative, c2)
		return
	}
	c = math.Sqrt(c2)
	return
}

// MaxSpeedOver scans interior cell states held column-wise in q and returns
// the largest characteristic speed, used to seed the first CFL time step
func MaxSpeedOver(sys System, q [][]float64) (lm float64) {
	for _, qi := range q {
		if s := sys.MaxSpeed(qi); s > lm {
			lm = s
		}
	}
	return
}
