package FV1D

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/notargets/gofv/equations"
	"github.com/notargets/gofv/riemann"
	"github.com/notargets/gofv/utils"
)

type LimiterType uint8

const (
	None LimiterType = iota
	MinMod
	MC
	Superbee
)

var limiterNames = []string{"None", "MinMod", "MC", "Superbee"}

func (l LimiterType) String() string { return limiterNames[l] }

func NewLimiter(name string) (l LimiterType, err error) {
	for i, n := range limiterNames {
		if n == name {
			return LimiterType(i), nil
		}
	}
	err = fmt.Errorf("unknown limiter %q", name)
	return
}

// philim evaluates the limiter function on the upwind wave ratio theta
func (l LimiterType) philim(theta float64) (phi float64) {
	switch l {
	case MinMod:
		phi = math.Max(0, math.Min(1, theta))
	case MC:
		phi = math.Max(0, math.Min(math.Min(0.5*(1+theta), 2), 2*theta))
	case Superbee:
		phi = math.Max(0, math.Max(math.Min(1, 2*theta), math.Min(2, theta)))
	default:
		phi = 1
	}
	return
}

// ClassicScheme is the first-order Godunov wave-propagation update, with
// optional limited second-order correction terms when Order is 2. Each cell
// is updated by the right-going fluctuation of its left interface and the
// left-going fluctuation of its right interface, which makes the update
// exactly conservative: interior contributions telescope and the domain
// total changes only through the two boundary fluxes.
type ClassicScheme struct {
	Grid    *Grid
	Sys     equations.System
	RS      riemann.Solver
	Order   int
	Limiter LimiterType
	// ParallelDegree controls the goroutine count of the interface sweep;
	// zero means NumCPU. Interface solves within a step are independent,
	// only the per-cell accumulation is serialized.
	ParallelDegree int
}

func NewClassicScheme(g *Grid, sys equations.System, rs riemann.Solver) (c *ClassicScheme) {
	return &ClassicScheme{
		Grid:  g,
		Sys:   sys,
		RS:    rs,
		Order: 1,
	}
}

func (c *ClassicScheme) NumGhost() int { return 2 }

// Advance computes qNew from q over one time step of size dt. Ghost cells
// of q must already be filled. The returned maxSpeed is the largest wave
// speed observed so the caller can adapt dt to its CFL bound; the scheme
// does not enforce the bound itself. On error qNew is untouched.
func (c *ClassicScheme) Advance(q, qNew *Field, dt float64) (maxSpeed float64, err error) {
	var (
		g   = c.Grid
		K   = g.K
		cfl = dt / g.Dx
	)
	// Interfaces j = -1..K+1: interface j separates cells j-1 and j. The
	// extra interface at each end feeds the second-order limiter stencil.
	fans, maxSpeed, err := c.solveInterfaces(q)
	if err != nil {
		return
	}
	for i := 0; i < K; i++ {
		var (
			qi   = q.Cell(i)
			qo   = qNew.Cell(i)
			left = fans[i+1] // interface between cells i-1 and i
			rght = fans[i+2] // interface between cells i and i+1
		)
		for n := 0; n < q.Neq; n++ {
			qo[n] = qi[n] - cfl*(left.Apdq[n]+rght.Amdq[n])
		}
	}
	if c.Order == 2 {
		c.applyCorrections(fans, qNew, cfl)
	}
	return
}

// solveInterfaces runs the Riemann solver over all interfaces, partitioned
// across goroutines with the work splitter. fans[j+1] holds interface j.
func (c *ClassicScheme) solveInterfaces(q *Field) (fans []riemann.Fan, maxSpeed float64, err error) {
	var (
		K      = c.Grid.K
		nIface = K + 3
		np     = c.ParallelDegree
	)
	if np == 0 {
		np = runtime.NumCPU()
	}
	var (
		pm     = utils.NewPartitionMap(np, nIface)
		wg     = sync.WaitGroup{}
		errs   = make([]error, pm.ParallelDegree)
		speeds = make([]float64, pm.ParallelDegree)
	)
	fans = make([]riemann.Fan, nIface)
	for n := 0; n < pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var (
				jMin, jMax = pm.GetBucketRange(n)
				lm         float64
			)
			for jj := jMin; jj < jMax; jj++ {
				j := jj - 1 // interface index
				fan, solveErr := c.RS.Solve(q.Cell(j-1), q.Cell(j))
				if solveErr != nil {
					errs[n] = fmt.Errorf("interface %d: %w", j, solveErr)
					return
				}
				fans[jj] = fan
				if s := fan.MaxSpeed(); s > lm {
					lm = s
				}
			}
			speeds[n] = lm
		}(n)
	}
	wg.Wait()
	for n, e := range errs {
		if e != nil {
			return nil, 0, e
		}
		if speeds[n] > maxSpeed {
			maxSpeed = speeds[n]
		}
	}
	return
}

// applyCorrections adds the limited second-order correction fluxes. The
// wave at each interface is limited against the wave of the same family at
// the upwind interface, then contributes the standard Lax-Wendroff-style
// term 0.5 |s| (1 - |s| dt/dx) wlim.
func (c *ClassicScheme) applyCorrections(fans []riemann.Fan, qNew *Field, cfl float64) {
	var (
		K      = c.Grid.K
		neq    = qNew.Neq
		ftilde = make([][]float64, K+1) // correction flux at interfaces 0..K
	)
	for j := 0; j <= K; j++ {
		var (
			fan = fans[j+1]
			ft  = make([]float64, neq)
		)
		for k, s := range fan.Speeds {
			var (
				w  = fan.Waves[k]
				wn = dot(w, w)
			)
			if wn == 0 {
				continue
			}
			// Upwind interface for this wave family
			up := fans[j]
			if s < 0 {
				up = fans[j+2]
			}
			var (
				theta = dot(up.Waves[k], w) / wn
				phi   = c.Limiter.philim(theta)
				sa    = math.Abs(s)
				coeff = 0.5 * sa * (1 - sa*cfl) * phi
			)
			for n := 0; n < neq; n++ {
				ft[n] += coeff * w[n]
			}
		}
		ftilde[j] = ft
	}
	for i := 0; i < K; i++ {
		qo := qNew.Cell(i)
		for n := 0; n < neq; n++ {
			qo[n] -= cfl * (ftilde[i+1][n] - ftilde[i][n])
		}
	}
}

func dot(a, b []float64) (d float64) {
	for i, av := range a {
		d += av * b[i]
	}
	return
}
