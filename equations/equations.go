/*
Package equations supplies the equation-specific capabilities consumed by the
Riemann solvers and update schemes: the physical flux, the fastest
characteristic speed of a state, and physical-state validation. Solvers and
schemes depend only on the System interface, never on a concrete equation.
*/
package equations

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDensityNotPositive = errors.New("equations: density must be positive")
	ErrPressureNegative   = errors.New("equations: pressure must be non-negative")
	ErrStateNotFinite     = errors.New("equations: state contains NaN or Inf")
	ErrDimension          = errors.New("equations: state dimension mismatch")
)

type System interface {
	Name() string
	NumEquations() int
	// Flux evaluates the physical flux function f(q)
	Flux(q []float64) []float64
	// MaxSpeed is the largest characteristic speed magnitude of state q,
	// used for CFL-based time step selection
	MaxSpeed(q []float64) float64
	// CheckState reports a distinguished error for non-physical states so
	// that an update step can be rejected before it corrupts the solution
	CheckState(q []float64) error
}

func checkFinite(q []float64) error {
	for _, val := range q {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%w: %v", ErrStateNotFinite, q)
		}
	}
	return nil
}
