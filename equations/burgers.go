package equations

import (
	"fmt"
	"math"
)

// Burgers is the scalar conservation law q_t + (q^2/2)_x = 0. The flux is
// convex with characteristic speed f'(q) = q, which makes it the standard
// testbed for transonic rarefactions and the entropy fix.
type Burgers struct{}

func NewBurgers() Burgers {
	return Burgers{}
}

func (b Burgers) Name() string { return "Burgers" }

func (b Burgers) NumEquations() int { return 1 }

func (b Burgers) Flux(q []float64) []float64 {
	return []float64{0.5 * q[0] * q[0]}
}

func (b Burgers) MaxSpeed(q []float64) float64 {
	return math.Abs(q[0])
}

func (b Burgers) CheckState(q []float64) error {
	if len(q) != 1 {
		return fmt.Errorf("%w: want 1 component, have %d", ErrDimension, len(q))
	}
	return checkFinite(q)
}
