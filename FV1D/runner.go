package FV1D

import (
	"fmt"
	"math"

	"github.com/notargets/gofv/equations"
)

// Scheme is one full time-step update strategy. Ghost cells of q are
// filled by the caller before Advance; qNew is only written on success.
type Scheme interface {
	Advance(q, qNew *Field, dt float64) (maxSpeed float64, err error)
	NumGhost() int
}

// Snapshot is an immutable copy of the solution at a point in time
type Snapshot struct {
	Time float64
	Step int
	Q    *Field
}

// Runner owns the outer time loop: CFL-adaptive step selection, boundary
// fills, buffer swapping, progress logging and snapshot capture.
type Runner struct {
	Grid         *Grid
	Sys          equations.System
	Scheme       Scheme
	CFLMax       float64
	FinalTime    float64
	LogFrequency int // steps between progress lines, 0 disables logging
	NumSnapshots int // evenly spaced snapshots in addition to t=0 and final
}

// CalculateDT picks the largest stable step from the last observed wave
// speed, clipped so the run lands exactly on FinalTime
func (r *Runner) CalculateDT(maxSpeed, Time float64) (dt float64) {
	if maxSpeed <= 0 {
		dt = r.FinalTime - Time
		return
	}
	dt = r.CFLMax * r.Grid.Dx / maxSpeed
	if dt+Time > r.FinalTime {
		dt = r.FinalTime - Time
	}
	return
}

// Run advances q0 to FinalTime. q0 is not modified; the returned snapshots
// bracket the run with the initial and final states.
func (r *Runner) Run(q0 *Field) (snaps []Snapshot, err error) {
	var (
		g         = r.Grid
		q         = q0.Copy()
		qNew      = NewField(q.Neq, q.K, q.NGhost)
		Time      float64
		tstep     int
		snapEvery = math.Inf(1)
		nextSnap  = math.Inf(1)
		maxSpeed  = equations.MaxSpeedOver(r.Sys, q.Interior())
	)
	if q.NGhost < r.Scheme.NumGhost() {
		err = fmt.Errorf("field has %d ghost cells, scheme needs %d",
			q.NGhost, r.Scheme.NumGhost())
		return
	}
	if r.NumSnapshots > 0 {
		snapEvery = r.FinalTime / float64(r.NumSnapshots+1)
		nextSnap = snapEvery
	}
	snaps = append(snaps, Snapshot{Time: 0, Step: 0, Q: q.Copy()})
	for Time < r.FinalTime {
		dt := r.CalculateDT(maxSpeed, Time)
		q.ExtrapolateBC()
		if maxSpeed, err = r.Scheme.Advance(q, qNew, dt); err != nil {
			err = fmt.Errorf("step %d, t = %8.4f: %w", tstep, Time, err)
			return
		}
		// Post-hoc CFL check: the achieved number can exceed the target
		// when the new step generated faster waves than the last one
		if achieved := maxSpeed * dt / g.Dx; achieved > r.CFLMax+1.e-10 {
			fmt.Printf("CFL exceeded at step %d: achieved %8.4f, bound %8.4f\n",
				tstep, achieved, r.CFLMax)
		}
		q, qNew = qNew, q
		Time += dt
		tstep++
		isDone := math.Abs(Time-r.FinalTime) < 1.e-12
		if r.LogFrequency > 0 && (tstep%r.LogFrequency == 0 || isDone) {
			fmt.Printf("Time = %8.4f, step = %d, max_speed = %8.4f, dt = %8.6f\n",
				Time, tstep, maxSpeed, dt)
		}
		if Time >= nextSnap && !isDone {
			snaps = append(snaps, Snapshot{Time: Time, Step: tstep, Q: q.Copy()})
			nextSnap += snapEvery
		}
	}
	snaps = append(snaps, Snapshot{Time: Time, Step: tstep, Q: q.Copy()})
	return
}

// InitField builds a solution field by sampling ic at every cell center
func InitField(g *Grid, neq, nGhost int, ic func(x float64) []float64) (f *Field) {
	f = NewField(neq, g.K, nGhost)
	for i := 0; i < g.K; i++ {
		f.SetCell(i, ic(g.X.AtVec(i)))
	}
	f.ExtrapolateBC()
	return
}
