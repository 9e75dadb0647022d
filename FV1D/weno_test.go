package FV1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofv/equations"
	"github.com/notargets/gofv/riemann"
)

func TestWENO5PolynomialExactness(t *testing.T) {
	// Every candidate stencil reproduces cell averages of polynomials up to
	// degree two exactly, so the blended edge value is exact regardless of
	// the nonlinear weights
	var (
		dx  = 0.1
		avg = make([]float64, 5)
	)
	for i := range avg {
		// Averages of x^2 over [i dx, (i+1) dx]
		a, b := float64(i)*dx, float64(i+1)*dx
		avg[i] = (b*b*b - a*a*a) / (3 * dx)
	}
	// Center cell is [0.2, 0.3]
	right := weno5edge(avg[0], avg[1], avg[2], avg[3], avg[4])
	left := weno5edge(avg[4], avg[3], avg[2], avg[1], avg[0])
	assert.InDelta(t, 0.09, right, 1.e-12)
	assert.InDelta(t, 0.04, left, 1.e-12)

	for i := range avg {
		// Averages of 2x+1 are the midpoint values
		avg[i] = 2*(float64(i)+0.5)*dx + 1
	}
	assert.InDelta(t, 2*0.3+1, weno5edge(avg[0], avg[1], avg[2], avg[3], avg[4]), 1.e-12)
}

func TestWENO5SmoothAccuracy(t *testing.T) {
	var (
		dx  = 0.1
		avg = make([]float64, 5)
	)
	for i := range avg {
		a := 0.2 + float64(i)*dx
		avg[i] = (math.Cos(a) - math.Cos(a+dx)) / dx
	}
	// Right edge of the center cell sits at x = 0.5
	edge := weno5edge(avg[0], avg[1], avg[2], avg[3], avg[4])
	assert.InDelta(t, math.Sin(0.5), edge, 1.e-4)
}

func TestWENO5StepNonOscillatory(t *testing.T) {
	// The smoothness indicators push the full weight onto the stencil that
	// avoids the jump, so the edge value hugs the smooth side
	assert.InDelta(t, 1.0, weno5edge(1, 1, 1, 0, 0), 1.e-6)
	assert.InDelta(t, 1.0, weno5edge(0, 0, 1, 1, 1), 1.e-6)
	assert.InDelta(t, 0.0, weno5edge(0, 0, 0, 1, 1), 1.e-6)
}

func TestWENOConservation(t *testing.T) {
	var (
		g  = NewGrid(0, 1, 100)
		b  = equations.NewBurgers()
		rs = riemann.NewRoeBurgers(false)
		w  = NewWENOScheme(g, b, rs)
		r  = &Runner{Grid: g, Sys: b, Scheme: w, CFLMax: 0.5, FinalTime: 0.2}
		q0 = InitField(g, 1, w.NumGhost(), hatIC)
	)
	snaps, err := r.Run(q0)
	assert.NoError(t, err)
	q := snaps[len(snaps)-1].Q
	assert.InDelta(t, q0.Total(0), q.Total(0), 1.e-10)
}

func TestWENOShockCapture(t *testing.T) {
	// Shock of speed 0.5 starting at x = 0.3 arrives at 0.5 by t = 0.4; the
	// essentially non-oscillatory reconstruction keeps over and undershoot
	// small
	var (
		g  = NewGrid(0, 1, 100)
		b  = equations.NewBurgers()
		rs = riemann.NewRoeBurgers(false)
		w  = NewWENOScheme(g, b, rs)
		r  = &Runner{Grid: g, Sys: b, Scheme: w, CFLMax: 0.5, FinalTime: 0.4}
		q0 = InitField(g, 1, w.NumGhost(), func(x float64) []float64 {
			if x < 0.3 {
				return []float64{1}
			}
			return []float64{0}
		})
	)
	snaps, err := r.Run(q0)
	assert.NoError(t, err)
	var (
		q   = snaps[len(snaps)-1].Q
		pos = g.XMax
	)
	for i := 0; i < g.K; i++ {
		if q.Cell(i)[0] < 0.5 {
			pos = g.X.AtVec(i)
			break
		}
	}
	assert.InDelta(t, 0.5, pos, 0.05)
	for i := 0; i < g.K; i++ {
		assert.True(t, q.Cell(i)[0] <= 1+0.05)
		assert.True(t, q.Cell(i)[0] >= -0.05)
	}
}
