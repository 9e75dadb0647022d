/*
Package FV1D implements Godunov-type finite-volume update schemes on a
uniform 1D grid: the classic first-order wave-propagation scheme (with
optional limited second-order corrections) and a WENO5 + SSP RK3 high-order
scheme. Both consume the approximate Riemann solvers from package riemann
through the equations.System capability interface.
*/
package FV1D

import (
	"fmt"

	"github.com/notargets/gofv/utils"
)

// Grid is an immutable uniform partition of [XMin, XMax] into K cells
type Grid struct {
	K          int
	XMin, XMax float64
	Dx         float64
	X          utils.Vector // cell center coordinates
}

func NewGrid(xmin, xmax float64, K int) (g *Grid) {
	if K < 1 {
		panic("grid needs at least one cell")
	}
	if xmax <= xmin {
		panic(fmt.Sprintf("invalid grid extent [%v,%v]", xmin, xmax))
	}
	var (
		dx = (xmax - xmin) / float64(K)
	)
	g = &Grid{
		K:    K,
		XMin: xmin,
		XMax: xmax,
		Dx:   dx,
		X:    utils.NewVector(K, utils.Linspace(xmin+0.5*dx, xmax-0.5*dx, K)),
	}
	return
}

// Field holds one cell-average state vector per cell, padded with NGhost
// ghost cells at each end for boundary conditions and wide stencils.
// Interior cells are addressed 0..K-1; ghosts are -NGhost..-1 and K..K+NGhost-1.
type Field struct {
	Neq, K, NGhost int
	cells          [][]float64
}

func NewField(neq, K, nGhost int) (f *Field) {
	f = &Field{
		Neq:    neq,
		K:      K,
		NGhost: nGhost,
		cells:  make([][]float64, K+2*nGhost),
	}
	for i := range f.cells {
		f.cells[i] = make([]float64, neq)
	}
	return
}

// Cell returns the state vector of cell i, ghosts included
func (f *Field) Cell(i int) []float64 {
	return f.cells[i+f.NGhost]
}

func (f *Field) SetCell(i int, q []float64) {
	copy(f.cells[i+f.NGhost], q)
}

// Interior returns the interior cell states without copying
func (f *Field) Interior() [][]float64 {
	return f.cells[f.NGhost : f.NGhost+f.K]
}

func (f *Field) Copy() (r *Field) {
	r = NewField(f.Neq, f.K, f.NGhost)
	for i, q := range f.cells {
		copy(r.cells[i], q)
	}
	return
}

// ExtrapolateBC fills the ghost cells with a zero-gradient copy of the
// nearest interior cell at each end of the domain
func (f *Field) ExtrapolateBC() {
	for g := 1; g <= f.NGhost; g++ {
		copy(f.Cell(-g), f.Cell(0))
		copy(f.Cell(f.K-1+g), f.Cell(f.K-1))
	}
}

// Total is the discrete integral of component n over the interior cells,
// up to the constant cell width
func (f *Field) Total(n int) (sum float64) {
	for _, q := range f.Interior() {
		sum += q[n]
	}
	return
}

// Component extracts interior values of component n as a Vector
func (f *Field) Component(n int) (v utils.Vector) {
	var (
		data = make([]float64, f.K)
	)
	for i, q := range f.Interior() {
		data[i] = q[n]
	}
	return utils.NewVector(f.K, data)
}
