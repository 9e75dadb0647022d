/*
Package sod_shock_tube evaluates the exact solution of the Sod family of
shock tube problems: two gas states at rest separated by a diaphragm at X0.
The solution consists of a left rarefaction fan, a contact discontinuity
and a right shock, with the post-shock pressure obtained from a single
scalar root find. Used as the reference for solver accuracy tests.
*/
package sod_shock_tube

import (
	"math"

	"github.com/notargets/gofv/utils"
)

// Problem is a Riemann problem with both initial states at rest
type Problem struct {
	RhoL, PL float64
	RhoR, PR float64
	Gamma    float64
	X0       float64 // diaphragm location
}

// NewSod is the canonical Sod problem with the diaphragm at x0
func NewSod(x0 float64) Problem {
	return Problem{
		RhoL: 1, PL: 1,
		RhoR: 0.125, PR: 0.1,
		Gamma: 1.4,
		X0:    x0,
	}
}

type solution struct {
	pPost, vPost, rhoPost, rhoMiddle float64
	vShock, cL, mu2                  float64
}

func (p Problem) solve() (s solution) {
	var (
		gamma = p.Gamma
		mu2   = (gamma - 1) / (gamma + 1)
	)
	s.mu2 = mu2
	s.cL = math.Sqrt(gamma * p.PL / p.RhoL)
	// Post-shock pressure from the matched shock/rarefaction condition
	s.pPost = fzero(func(P float64) (y float64) {
		y = (P-p.PR)*(1-mu2)/math.Sqrt(p.RhoR*(P+mu2*p.PR)) -
			(2*s.cL/(gamma-1))*(1-math.Pow(P/p.PL, (gamma-1)/(2*gamma)))
		return
	}, 0.5*(p.PL+p.PR))
	s.vPost = (2 * s.cL / (gamma - 1)) * (1 - math.Pow(s.pPost/p.PL, (gamma-1)/(2*gamma)))
	s.rhoPost = p.RhoR * ((s.pPost / p.PR) + mu2) / (1 + mu2*(s.pPost/p.PR))
	s.vShock = s.vPost * (s.rhoPost / p.RhoR) / ((s.rhoPost / p.RhoR) - 1.)
	s.rhoMiddle = p.RhoL * math.Pow(s.pPost/p.PL, 1./gamma)
	return
}

// WaveLocations returns the positions at time t of the rarefaction head x1
// and tail x2, the contact discontinuity x3 and the shock x4
func (p Problem) WaveLocations(t float64) (x1, x2, x3, x4 float64) {
	var (
		s  = p.solve()
		c2 = s.cL - 0.5*(p.Gamma-1.)*s.vPost
	)
	x1 = p.X0 - s.cL*t
	x2 = p.X0 + (s.vPost-c2)*t
	x3 = p.X0 + s.vPost*t
	x4 = p.X0 + s.vShock*t
	return
}

// Sample evaluates density, velocity and pressure at the points X and time t
func (p Problem) Sample(X []float64, t float64) (Rho, U, P []float64) {
	var (
		N     = len(X)
		gamma = p.Gamma
	)
	Rho = make([]float64, N)
	U = make([]float64, N)
	P = make([]float64, N)
	if t <= 0 {
		for i, x := range X {
			if x < p.X0 {
				Rho[i], P[i] = p.RhoL, p.PL
			} else {
				Rho[i], P[i] = p.RhoR, p.PR
			}
		}
		return
	}
	var (
		s              = p.solve()
		x1, x2, x3, x4 = p.WaveLocations(t)
	)
	for i, x := range X {
		switch {
		case x < x1:
			Rho[i], U[i], P[i] = p.RhoL, 0, p.PL
		case x <= x2:
			// Inside the rarefaction fan
			c := s.mu2*((p.X0-x)/t) + (1.-s.mu2)*s.cL
			Rho[i] = p.RhoL * math.Pow(c/s.cL, 2/(gamma-1))
			P[i] = p.PL * math.Pow(Rho[i]/p.RhoL, gamma)
			U[i] = (1. - s.mu2) * ((x-p.X0)/t + s.cL)
		case x <= x3:
			Rho[i], U[i], P[i] = s.rhoMiddle, s.vPost, s.pPost
		case x <= x4:
			Rho[i], U[i], P[i] = s.rhoPost, s.vPost, s.pPost
		default:
			Rho[i], U[i], P[i] = p.RhoR, 0, p.PR
		}
	}
	return
}

// SampleGrid evaluates the solution on N uniform cell centers over
// [xmin, xmax], matching the finite-volume grid layout
func (p Problem) SampleGrid(xmin, xmax float64, N int, t float64) (X, Rho, U, P []float64) {
	var (
		dx = (xmax - xmin) / float64(N)
	)
	X = utils.Linspace(xmin+0.5*dx, xmax-0.5*dx, N)
	Rho, U, P = p.Sample(X, t)
	return
}

// fzero finds a root by secant iteration from the given start value
func fzero(f func(P float64) (y float64), start float64) float64 {
	var (
		tol = 0.0000001
		res float64
	)
	startOld := start / 2
	res = f(startOld)
	for math.Abs(res) > tol {
		resNew := f(start)
		deriv := (start - startOld) / (resNew - res)
		startNew := math.Abs(start - f(start)*deriv)
		startOld = start
		start = startNew
		res = resNew
	}
	return start
}
